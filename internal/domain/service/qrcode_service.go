package service

// QRCodeService defines the interface for generating QR codes that link to a
// supplier's public storefront.
type QRCodeService interface {
	// GenerateStorefrontQR renders a PNG QR code for the given storefront URL.
	GenerateStorefrontQR(url string) ([]byte, error)
}
