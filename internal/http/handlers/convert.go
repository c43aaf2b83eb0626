package handlers

import "courier-agent/internal/domain"

func courierToDTO(c *domain.Courier) *courierDTO {
	if c == nil {
		return nil
	}
	return &courierDTO{
		ID:           c.ID,
		EmployeeCode: c.EmployeeCode,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		ProfilePhoto: c.ProfilePhoto,
	}
}

func deliveryToDTO(d domain.Delivery) deliveryDTO {
	next := d.Status.NextStatuses()
	nextStr := make([]string, len(next))
	for i, s := range next {
		nextStr[i] = string(s)
	}

	return deliveryDTO{
		ID:                    d.ID,
		DeliveryCode:          d.DeliveryCode,
		Status:                string(d.Status),
		Address:               d.Address,
		CustomerLatitude:      d.CustomerLatitude,
		CustomerLongitude:     d.CustomerLongitude,
		CustomerLocationNote:  d.CustomerLocationNote,
		PhoneNumber:           d.PhoneNumber,
		Fee:                   d.Fee,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		CustomerNote:          d.CustomerNote,
		NextStatuses:          nextStr,
		Order:                 orderToDTO(d.Order),
	}
}

func orderToDTO(o domain.Order) orderDTO {
	items := make([]lineItemDTO, len(o.LineItems))
	for i, li := range o.LineItems {
		items[i] = lineItemDTO{
			Name:      li.ProductName,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Notes:     li.Notes,
		}
	}

	out := orderDTO{
		ID:         o.ID,
		OrderCode:  o.OrderCode,
		CreatedAt:  o.CreatedAt,
		TotalPrice: o.TotalPrice,
		Items:      items,
	}
	if o.Customer != nil {
		out.Customer = &customerDTO{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Phone:     o.Customer.Phone,
		}
	}
	return out
}

func deliveriesToDTO(ds []domain.Delivery) []deliveryDTO {
	out := make([]deliveryDTO, len(ds))
	for i, d := range ds {
		out[i] = deliveryToDTO(d)
	}
	return out
}
