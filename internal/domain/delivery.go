package domain

// Delivery - a single drop-off task assigned to a courier.
// Timestamps stay in the server's ISO-8601 string form; the agent never
// does arithmetic on them, only passes them through to consumers.
type Delivery struct {
	ID                    int64
	DeliveryCode          string
	OrderID               int64
	Status                Status
	Address               string
	CustomerLatitude      *float64
	CustomerLongitude     *float64
	CustomerLocationNote  string
	PhoneNumber           string
	AssignedCourierID     *int64
	Fee                   *float64
	EstimatedDeliveryTime string
	ActualDeliveryTime    string
	PickupFromKitchenTime string
	CustomerNote          string
	Order                 Order
}

// HasCustomerLocation reports whether the delivery carries map coordinates.
func (d Delivery) HasCustomerLocation() bool {
	return d.CustomerLatitude != nil && d.CustomerLongitude != nil
}
