package domain

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// Member is the authenticated actor. Only the fields the order and
// review flows need are modeled here; account management lives in a
// separate service.
type Member struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Tel          string
	Role         Role
}

// CartItem is a pending line in a buyer's cart, snapshotting the
// product name and price the buyer saw.
type CartItem struct {
	ID          int64
	BuyerID     int64
	ProductID   int64
	ProductName string
	UnitPrice   int64
	Quantity    int64
}

func (c CartItem) ExtendedPrice() int64 { return c.UnitPrice * c.Quantity }
