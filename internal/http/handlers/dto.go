package handlers

type loginRequest struct {
	EmployeeCode string `json:"employee_code"`
}

type courierDTO struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

type sessionDTO struct {
	Authenticated bool        `json:"authenticated"`
	Courier       *courierDTO `json:"courier,omitempty"`
}

type customerDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

type lineItemDTO struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

type orderDTO struct {
	ID         int64         `json:"id"`
	OrderCode  string        `json:"order_code"`
	CreatedAt  string        `json:"created_at,omitempty"`
	TotalPrice float64       `json:"total_price"`
	Customer   *customerDTO  `json:"customer,omitempty"`
	Items      []lineItemDTO `json:"items"`
}

type deliveryDTO struct {
	ID                    int64    `json:"id"`
	DeliveryCode          string   `json:"delivery_code"`
	Status                string   `json:"status"`
	Address               string   `json:"address,omitempty"`
	CustomerLatitude      *float64 `json:"customer_latitude,omitempty"`
	CustomerLongitude     *float64 `json:"customer_longitude,omitempty"`
	CustomerLocationNote  string   `json:"customer_location_note,omitempty"`
	PhoneNumber           string   `json:"phone_number,omitempty"`
	Fee                   *float64 `json:"fee,omitempty"`
	EstimatedDeliveryTime string   `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    string   `json:"actual_delivery_time,omitempty"`
	CustomerNote          string   `json:"customer_note,omitempty"`
	NextStatuses          []string `json:"next_statuses"`
	Order                 orderDTO `json:"order"`
}

type countsDTO struct {
	Preparing      int `json:"preparing"`
	OutForDelivery int `json:"out_for_delivery"`
	Delivered      int `json:"delivered"`
}

type transitionRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type positionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Note      string  `json:"note,omitempty"`
}
