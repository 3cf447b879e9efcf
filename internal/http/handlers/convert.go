package handlers

import (
	"campus-delivery/internal/domain"
	"campus-delivery/internal/repository"
)

func acceptResultToResponse(res domain.AcceptResult) acceptOrderResponse {
	return acceptOrderResponse{
		Message:     "Order accepted successfully",
		OrderID:     res.OrderID,
		AgentID:     res.DeliveryAgent,
		DistanceKm:  res.DistanceKm,
		DeliveryFee: res.DeliveryFee.StringFixed(2),
		EstimatedAt: res.EstimatedAt,
	}
}

func assignmentToClaimResponse(a *domain.Assignment) claimDeliveryResponse {
	resp := claimDeliveryResponse{
		DeliveryID: a.ID,
		OrderID:    a.OrderID,
		Status:     string(a.Status),
	}
	if a.DeliveryAgent != nil {
		resp.AgentID = *a.DeliveryAgent
	}
	return resp
}

func ordersToAvailableResponse(list []domain.Order) []availableOrderDTO {
	out := make([]availableOrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, availableOrderDTO{
			OrderID:      o.ID,
			Reference:    o.Reference,
			Status:       string(o.Status),
			DeliveryAddr: o.DeliveryAddr,
			DistanceKm:   o.DistanceKm,
			DeliveryFee:  o.DeliveryFee.StringFixed(2),
			TotalPrice:   o.TotalPrice.StringFixed(2),
			CreatedAt:    o.CreatedAt,
		})
	}
	return out
}

func dashboardToResponse(d *repository.Dashboard) dashboardResponse {
	return dashboardResponse{
		AgentID:           d.Profile.UserID,
		Online:            d.Profile.Online,
		CurrentLoad:       d.Profile.CurrentLoad,
		MaxConcurrentLoad: d.Profile.MaxConcurrentLoad,
		AverageRating:     d.Profile.AverageRating,
		TotalDeliveries:   d.Profile.TotalDeliveries,
		TodayDeliveries:   d.TodayDeliveries,
		PendingDeliveries: d.PendingDeliveries,
		WeekDeliveries:    d.WeekDeliveries,
		TotalEarnings:     d.Profile.TotalEarnings.StringFixed(2),
		PendingEarnings:   d.Profile.PendingEarnings.StringFixed(2),
		AvailableBalance:  d.Profile.AvailableBalance.StringFixed(2),
		CompletedEarnings: d.CompletedEarnings.StringFixed(2),
	}
}

func earningsToResponse(entries []domain.EarningsTransaction) []earningsEntryDTO {
	out := make([]earningsEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, earningsEntryDTO{
			ID:          e.ID,
			Reference:   e.Reference,
			Type:        string(e.Type),
			Amount:      e.Amount.StringFixed(2),
			Status:      string(e.Status),
			Description: e.Description,
			OrderID:     e.OrderID,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}
