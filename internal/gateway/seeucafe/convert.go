package seeucafe

import "courier-agent/internal/domain"

func employeeToDomain(e employeeDTO) domain.Courier {
	c := domain.Courier{
		ID:           e.ID,
		EmployeeCode: e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Position:     e.Position,
		Status:       e.Status,
	}
	if e.Phone != nil {
		c.Phone = *e.Phone
	}
	if e.ProfilePhoto != nil {
		c.ProfilePhoto = *e.ProfilePhoto
	}
	return c
}

func deliveryToDomain(d deliveryDTO) domain.Delivery {
	out := domain.Delivery{
		ID:                d.ID,
		DeliveryCode:      d.DeliveryID,
		OrderID:           d.OrderID,
		Status:            domain.Status(d.Status),
		CustomerLatitude:  d.CustomerLatitude,
		CustomerLongitude: d.CustomerLongitude,
		AssignedCourierID: d.EmployeeID,
		Fee:               d.DeliveryFee,
		Order:             orderToDomain(d.Order),
	}
	out.Address = deref(d.DeliveryAddress)
	out.CustomerLocationNote = deref(d.CustomerLocationNote)
	out.PhoneNumber = deref(d.PhoneNumber)
	out.EstimatedDeliveryTime = deref(d.EstimatedDeliveryTime)
	out.ActualDeliveryTime = deref(d.ActualDeliveryTime)
	out.PickupFromKitchenTime = deref(d.PickupFromKitchenTime)
	out.CustomerNote = deref(d.CustomerNote)
	return out
}

func deliveriesToDomain(list []deliveryDTO) []domain.Delivery {
	out := make([]domain.Delivery, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToDomain(d))
	}
	return out
}

func orderToDomain(o orderDTO) domain.Order {
	out := domain.Order{
		ID:         o.ID,
		OrderCode:  o.OrderID,
		CustomerID: o.UserID,
		CreatedAt:  o.CreateAt,
		TotalPrice: o.TotalPrice,
	}
	if o.User != nil {
		out.Customer = &domain.Customer{
			ID:        o.User.ID,
			Email:     o.User.Email,
			FirstName: deref(o.User.FirstName),
			LastName:  deref(o.User.LastName),
			Phone:     deref(o.User.Phone),
		}
	}
	for _, d := range o.OrderDetails {
		out.LineItems = append(out.LineItems, lineItemToDomain(d))
	}
	return out
}

func lineItemToDomain(d orderDetailDTO) domain.LineItem {
	item := domain.LineItem{
		ID:          d.ID,
		Quantity:    d.Quantity,
		UnitPrice:   d.Price,
		Notes:       deref(d.Notes),
		ProductName: domain.UnnamedItemName,
	}
	switch {
	case d.FoodMenu != nil:
		item.ProductName = d.FoodMenu.Name
	case d.BeverageMenu != nil:
		item.ProductName = d.BeverageMenu.Name
	}
	return item
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
