package v1

import "github.com/petnextdoor/pet_next_door/internal/models"

// ModelToUserResponse converts a domain user into a response DTO. The
// password hash never leaves the service layer.
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:          model.ID,
		Username:    model.Username,
		Email:       model.Email,
		ProfileName: model.ProfileName,
		PhoneNumber: model.PhoneNumber,
		Bio:         model.Bio,
		Location:    model.Location,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		PhotoURL:    model.PhotoURL,
		CreatedAt:   model.CreatedAt,
	}
}

// DTOToPetModel converts a create/update pet DTO into a domain model.
// A single function covers both since the fields match.
func DTOToPetModel(dto any) *models.PetProfile {
	switch v := dto.(type) {
	case CreatePetRequest:
		return &models.PetProfile{
			Name:                v.Name,
			Species:             v.Species,
			Breed:               v.Breed,
			Age:                 v.Age,
			GeneralSize:         v.GeneralSize,
			EnergyLevel:         v.EnergyLevel,
			Weight:              v.Weight,
			ColorMarkings:       v.ColorMarkings,
			Description:         v.Description,
			IsPlaydateAvailable: v.IsPlaydateAvailable,
			IsAdoptable:         v.IsAdoptable,
			PrivacySettings:     v.PrivacySettings,
		}
	case UpdatePetRequest:
		return &models.PetProfile{
			Name:                v.Name,
			Species:             v.Species,
			Breed:               v.Breed,
			Age:                 v.Age,
			GeneralSize:         v.GeneralSize,
			EnergyLevel:         v.EnergyLevel,
			Weight:              v.Weight,
			ColorMarkings:       v.ColorMarkings,
			Description:         v.Description,
			IsPlaydateAvailable: v.IsPlaydateAvailable,
			IsAdoptable:         v.IsAdoptable,
			PrivacySettings:     v.PrivacySettings,
		}
	}
	return nil
}

func ModelToPetPhotoResponse(model *models.PetPhoto) *PetPhotoResponse {
	return &PetPhotoResponse{
		ID:         model.ID,
		PetID:      model.PetID,
		PhotoURL:   model.PhotoURL,
		IsPrimary:  model.IsPrimary,
		UploadedAt: model.UploadedAt,
	}
}

func ModelToPetResponse(model *models.PetProfile) *PetResponse {
	photos := make([]PetPhotoResponse, len(model.Photos))
	for i := range model.Photos {
		photos[i] = *ModelToPetPhotoResponse(&model.Photos[i])
	}
	return &PetResponse{
		ID:                  model.ID,
		OwnerID:             model.OwnerID,
		Name:                model.Name,
		Species:             model.Species,
		Breed:               model.Breed,
		Age:                 model.Age,
		GeneralSize:         model.GeneralSize,
		EnergyLevel:         model.EnergyLevel,
		Weight:              model.Weight,
		ColorMarkings:       model.ColorMarkings,
		Description:         model.Description,
		IsPlaydateAvailable: model.IsPlaydateAvailable,
		IsAdoptable:         model.IsAdoptable,
		PrivacySettings:     model.PrivacySettings,
		CreatedAt:           model.CreatedAt,
		Photos:              photos,
		Traits:              model.Traits,
	}
}

func ModelsToPetResponses(pets []*models.PetProfile) []*PetResponse {
	responses := make([]*PetResponse, len(pets))
	for i, pet := range pets {
		responses[i] = ModelToPetResponse(pet)
	}
	return responses
}

func ModelToListingResponse(model *models.AdoptionListing) *ListingResponse {
	return &ListingResponse{
		ID:                   model.ID,
		PetID:                model.PetID,
		AdditionalInfo:       model.AdditionalInfo,
		AdoptionRequirements: model.AdoptionRequirements,
		IsActive:             model.IsActive,
		PostedAt:             model.PostedAt,
	}
}

func ModelsToListingResponses(listings []*models.AdoptionListing) []*ListingResponse {
	responses := make([]*ListingResponse, len(listings))
	for i, listing := range listings {
		responses[i] = ModelToListingResponse(listing)
	}
	return responses
}

func ModelToCommentResponse(model *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        model.ID,
		PostID:    model.PostID,
		UserID:    model.UserID,
		Text:      model.Text,
		CreatedAt: model.CreatedAt,
	}
}

func ModelToPostResponse(model *models.Post) *PostResponse {
	comments := make([]CommentResponse, len(model.Comments))
	for i := range model.Comments {
		comments[i] = *ModelToCommentResponse(&model.Comments[i])
	}
	return &PostResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Caption:   model.Caption,
		PhotoURL:  model.PhotoURL,
		Timestamp: model.Timestamp,
		Comments:  comments,
	}
}

func ModelsToPostResponses(posts []*models.Post) []*PostResponse {
	responses := make([]*PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ModelToPostResponse(post)
	}
	return responses
}

// DTOToAlertModel converts a create/update alert DTO into a domain model.
// A single function covers both since the fields match.
func DTOToAlertModel(dto any) *models.CommunityAlert {
	switch v := dto.(type) {
	case CreateAlertRequest:
		return &models.CommunityAlert{
			AlertType:     v.AlertType,
			Title:         v.Title,
			Description:   v.Description,
			PetType:       v.PetType,
			Size:          v.Size,
			ColorMarkings: v.ColorMarkings,
			Location:      v.Location,
			Latitude:      v.Latitude,
			Longitude:     v.Longitude,
			ContactInfo:   v.ContactInfo,
			PhotoURL:      v.PhotoURL,
		}
	case UpdateAlertRequest:
		return &models.CommunityAlert{
			AlertType:     v.AlertType,
			Title:         v.Title,
			Description:   v.Description,
			PetType:       v.PetType,
			Size:          v.Size,
			ColorMarkings: v.ColorMarkings,
			Location:      v.Location,
			Latitude:      v.Latitude,
			Longitude:     v.Longitude,
			ContactInfo:   v.ContactInfo,
			PhotoURL:      v.PhotoURL,
		}
	}
	return nil
}

func ModelToAlertResponse(model *models.CommunityAlert) *AlertResponse {
	return &AlertResponse{
		ID:            model.ID,
		UserID:        model.UserID,
		AlertType:     model.AlertType,
		Title:         model.Title,
		Description:   model.Description,
		PetType:       model.PetType,
		Size:          model.Size,
		ColorMarkings: model.ColorMarkings,
		Location:      model.Location,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		ContactInfo:   model.ContactInfo,
		PhotoURL:      model.PhotoURL,
		IsActive:      model.IsActive,
		CreatedAt:     model.CreatedAt,
	}
}

func ModelsToAlertResponses(alerts []*models.CommunityAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

func ModelToThreadResponse(model *models.MessageThread) *ThreadResponse {
	return &ThreadResponse{
		ID:         model.ID,
		UserAID:    model.UserAID,
		UserBID:    model.UserBID,
		PlaydateID: model.PlaydateID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ModelsToThreadResponses(threads []*models.MessageThread) []*ThreadResponse {
	responses := make([]*ThreadResponse, len(threads))
	for i, thread := range threads {
		responses[i] = ModelToThreadResponse(thread)
	}
	return responses
}

func ModelToMessageResponse(model *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:        model.ID,
		ThreadID:  model.ThreadID,
		SenderID:  model.SenderID,
		Text:      model.Text,
		PhotoURL:  model.PhotoURL,
		Timestamp: model.Timestamp,
		IsRead:    model.IsRead,
	}
}

func ModelsToMessageResponses(messages []*models.Message) []*MessageResponse {
	responses := make([]*MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ModelToMessageResponse(message)
	}
	return responses
}

func ModelToPlaydateResponse(model *models.Playdate) *PlaydateResponse {
	return &PlaydateResponse{
		ID:            model.ID,
		PetID:         model.PetID,
		OrganizerID:   model.OrganizerID,
		ScheduledTime: model.ScheduledTime,
		Location:      model.Location,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
	}
}

func ModelsToPlaydateResponses(playdates []*models.Playdate) []*PlaydateResponse {
	responses := make([]*PlaydateResponse, len(playdates))
	for i, playdate := range playdates {
		responses[i] = ModelToPlaydateResponse(playdate)
	}
	return responses
}
