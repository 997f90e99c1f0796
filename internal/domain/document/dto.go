package document

// UploadRequest holds the form fields sent next to the file.
type UploadRequest struct {
	DocumentType string `form:"document_type"`
	Title        string `form:"title"`
	Description  string `form:"description"`
	AssetID      string `form:"asset_id"`
	OwnerID      string `form:"owner_id"`
	BookingID    string `form:"booking_id"`
	ExpenseID    string `form:"expense_id"`
	RenterID     string `form:"renter_id"`
}

type Filter struct {
	DocumentType string
	AssetID      string
	OwnerID      string
	BookingID    string
}
