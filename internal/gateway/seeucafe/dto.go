package seeucafe

// Wire DTOs for the delivery API. Field names follow the server's JSON
// contract verbatim, including the irregular casing of Employee_id and
// User_id. Do not "fix" them.

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
}

type loginResponse struct {
	Success  bool         `json:"success"`
	Employee *employeeDTO `json:"employee,omitempty"`
	Token    string       `json:"token,omitempty"`
	Message  string       `json:"message,omitempty"`
}

type employeeDTO struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Position     string  `json:"position"`
	Status       string  `json:"status"`
	ProfilePhoto *string `json:"profile_photo"`
	EmployeeID   string  `json:"Employee_id"`
}

type deliveryDTO struct {
	ID                    int64        `json:"id"`
	OrderID               int64        `json:"order_id"`
	Status                string       `json:"status"`
	DeliveryID            string       `json:"delivery_id"`
	DeliveryAddress       *string      `json:"delivery_address"`
	CustomerLatitude      *float64     `json:"customer_latitude"`
	CustomerLongitude     *float64     `json:"customer_longitude"`
	CustomerLocationNote  *string      `json:"customer_location_note"`
	PhoneNumber           *string      `json:"phone_number"`
	EmployeeID            *int64       `json:"employee_id"`
	DeliveryFee           *float64     `json:"delivery_fee"`
	EstimatedDeliveryTime *string      `json:"estimated_delivery_time"`
	ActualDeliveryTime    *string      `json:"actual_delivery_time"`
	PickupFromKitchenTime *string      `json:"pickup_from_kitchen_time"`
	CustomerNote          *string      `json:"customer_note"`
	Order                 orderDTO     `json:"order"`
	Employee              *employeeDTO `json:"employee"`
}

type orderDTO struct {
	ID           int64            `json:"id"`
	OrderID      string           `json:"order_id"`
	UserID       *int64           `json:"User_id"`
	CreateAt     string           `json:"create_at"`
	TotalPrice   float64          `json:"total_price"`
	User         *userDTO         `json:"user"`
	OrderDetails []orderDetailDTO `json:"order_details"`
}

type userDTO struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type orderDetailDTO struct {
	ID           int64    `json:"id"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Notes        *string  `json:"notes"`
	FoodMenu     *menuDTO `json:"food_menu"`
	BeverageMenu *menuDTO `json:"beverage_menu"`
}

type menuDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type deliveryListResponse struct {
	Data       []deliveryDTO `json:"data"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

// Pagination mirrors the list endpoint's paging block.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type locationUpdateRequest struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LocationNote   string  `json:"locationNote,omitempty"`
	NotifyCustomer bool    `json:"notifyCustomer"`
}

// errorBody covers the two shapes the server uses for failures.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorBody) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
