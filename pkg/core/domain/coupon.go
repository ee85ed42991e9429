package domain

// CouponType distinguishes redeemable codes from link-only deals
type CouponType string

const (
	CouponCode CouponType = "CODE"
	CouponDeal CouponType = "DEAL"
)

// Coupon represents a single discount offer
type Coupon struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Type          CouponType `json:"type"`
	Code          string     `json:"code,omitempty"` // Only set when Type == CouponCode
	DiscountValue string     `json:"discountValue"`
	StoreID       string     `json:"storeId"`
	CategoryID    string     `json:"categoryId"`
	ExpiryDate    string     `json:"expiryDate"`
	Description   string     `json:"description"`
	Terms         string     `json:"terms"`
	AffiliateURL  string     `json:"affiliateUrl"`
	IsActive      bool       `json:"isActive"`
	IsFeatured    bool       `json:"isFeatured"`
	ClickCount    int64      `json:"clickCount"`
	CopyCount     int64      `json:"copyCount"`
	VerifiedDate  string     `json:"verifiedDate"`
}
