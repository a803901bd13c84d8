package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/service"
)

func DTOToCreateInput(req CreateAlertRequest) service.CreateInput {
	return service.CreateInput{
		Category:    models.Category(req.Category),
		Description: req.Description,
		Severity:    models.Severity(req.Severity),
		IsEmergency: req.IsEmergency,
		IsAnonymous: req.IsAnonymous,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(a models.Alert) AlertResponse {
	responders := a.Responders
	if responders == nil {
		responders = []string{}
	}
	return AlertResponse{
		ID:          a.ID,
		UserID:      a.OwnerID,
		UserName:    a.DisplayName,
		UserAvatar:  a.DisplayAvatar,
		Category:    string(a.Category),
		Description: a.Description,
		Lat:         a.Location.Lat,
		Lng:         a.Location.Lng,
		Status:      string(a.Status),
		Responders:  responders,
		Severity:    string(a.Severity),
		IsEmergency: a.IsEmergency,
		IsAnonymous: a.IsAnonymous,
		CreatedAt:   a.CreatedAt,
	}
}

func ModelsToAlertResponses(alerts []models.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = ModelToAlertResponse(a)
	}
	return out
}

func NearbyToAlertResponses(alerts []service.NearbyAlert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = ModelToAlertResponse(a.Alert)
		out[i].DistanceKm = a.DistanceKm
	}
	return out
}

func ModelToMutationResponse(m models.Mutation) MutationResponse {
	resp := MutationResponse{
		ID:        m.ID,
		Kind:      string(m.Kind),
		State:     string(m.State),
		Error:     m.Error,
		StartedAt: m.StartedAt,
		SettledAt: m.SettledAt,
	}
	if m.AlertID != uuid.Nil {
		id := m.AlertID
		resp.AlertID = &id
	}
	return resp
}

func ModelsToMutationResponses(muts []models.Mutation) []MutationResponse {
	out := make([]MutationResponse, len(muts))
	for i, m := range muts {
		out[i] = ModelToMutationResponse(m)
	}
	return out
}
