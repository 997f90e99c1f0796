package asset

type CreateRequest struct {
	OwnerID                string   `json:"owner_id" validate:"required"`
	Name                   string   `json:"name" validate:"required"`
	Description            string   `json:"description"`
	Status                 string   `json:"status"`
	Year                   int      `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	Make                   string   `json:"make"`
	Model                  string   `json:"model"`
	VIN                    string   `json:"vin"`
	LicensePlate           string   `json:"license_plate"`
	RVType                 string   `json:"rv_type"`
	LengthFeet             float64  `json:"length_feet" validate:"gte=0"`
	Sleeps                 int      `json:"sleeps" validate:"gte=0"`
	FuelType               string   `json:"fuel_type"`
	Mileage                int      `json:"mileage" validate:"gte=0"`
	Amenities              []string `json:"amenities"`
	StorageLocation        string   `json:"storage_location"`
	City                   string   `json:"city"`
	State                  string   `json:"state"`
	ZipCode                string   `json:"zip_code"`
	BasePricePerNight      float64  `json:"base_price_per_night" validate:"required,gt=0"`
	CleaningFee            *float64 `json:"cleaning_fee" validate:"omitempty,gte=0"`
	SecurityDeposit        *float64 `json:"security_deposit" validate:"omitempty,gte=0"`
	MinimumRentalNights    *int     `json:"minimum_rental_nights" validate:"omitempty,gte=1"`
	InsurancePolicyNumber  string   `json:"insurance_policy_number"`
	InsuranceExpiryDate    string   `json:"insurance_expiry_date" validate:"omitempty,date"`
	RegistrationNumber     string   `json:"registration_number"`
	RegistrationExpiryDate string   `json:"registration_expiry_date" validate:"omitempty,date"`
	PrimaryImageURL        string   `json:"primary_image_url"`
	ImageURLs              []string `json:"image_urls"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	ID                     string    `json:"id"`
	Name                   *string   `json:"name"`
	Description            *string   `json:"description"`
	Status                 *string   `json:"status"`
	Year                   *int      `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	Make                   *string   `json:"make"`
	Model                  *string   `json:"model"`
	VIN                    *string   `json:"vin"`
	LicensePlate           *string   `json:"license_plate"`
	RVType                 *string   `json:"rv_type"`
	LengthFeet             *float64  `json:"length_feet" validate:"omitempty,gte=0"`
	Sleeps                 *int      `json:"sleeps" validate:"omitempty,gte=0"`
	FuelType               *string   `json:"fuel_type"`
	Mileage                *int      `json:"mileage" validate:"omitempty,gte=0"`
	Amenities              *[]string `json:"amenities"`
	StorageLocation        *string   `json:"storage_location"`
	City                   *string   `json:"city"`
	State                  *string   `json:"state"`
	ZipCode                *string   `json:"zip_code"`
	BasePricePerNight      *float64  `json:"base_price_per_night" validate:"omitempty,gt=0"`
	CleaningFee            *float64  `json:"cleaning_fee" validate:"omitempty,gte=0"`
	SecurityDeposit        *float64  `json:"security_deposit" validate:"omitempty,gte=0"`
	MinimumRentalNights    *int      `json:"minimum_rental_nights" validate:"omitempty,gte=1"`
	InsurancePolicyNumber  *string   `json:"insurance_policy_number"`
	InsuranceExpiryDate    *string   `json:"insurance_expiry_date" validate:"omitempty,date"`
	RegistrationNumber     *string   `json:"registration_number"`
	RegistrationExpiryDate *string   `json:"registration_expiry_date" validate:"omitempty,date"`
	PrimaryImageURL        *string   `json:"primary_image_url"`
	ImageURLs              *[]string `json:"image_urls"`
}

type Filter struct {
	Status  string
	OwnerID string
}
