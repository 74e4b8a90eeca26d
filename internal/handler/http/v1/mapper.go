package v1

import "github.com/lumina-safety/safety_signal_system/internal/models"

// DTOToSignalModel преобразует DTO создания сигнала в доменную модель
func DTOToSignalModel(dto CreateSignalRequest) *models.SafetySignal {
	return &models.SafetySignal{
		Location: models.Location{
			Lat: dto.Latitude,
			Lng: dto.Longitude,
		},
		IncidentType: dto.IncidentType,
		Severity:     dto.Severity,
		Description:  dto.Description,
		TimeOfDay:    dto.TimeOfDay,
		City:         dto.City,
	}
}

// ModelToSignalResponse преобразует доменную модель в DTO для ответа
func ModelToSignalResponse(model *models.SafetySignal) *SignalResponse {
	return &SignalResponse{
		ID:              model.ID,
		Latitude:        model.Location.Lat,
		Longitude:       model.Location.Lng,
		IncidentType:    model.IncidentType,
		Severity:        model.Severity,
		Description:     model.Description,
		TimeOfDay:       model.TimeOfDay,
		ConfidenceScore: model.ConfidenceScore,
		ValidationCount: model.ValidationCount,
		CreatedAt:       model.CreatedAt,
		City:            model.City,
	}
}

// ModelsToSignalResponses преобразует слайс моделей в слайс DTO
func ModelsToSignalResponses(models []*models.SafetySignal) []*SignalResponse {
	responses := make([]*SignalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSignalResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Role:      model.Role,
		CreatedAt: model.CreatedAt,
	}
}
