package rider

import "parcelhub/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		District:   r.District,
		Status:     entities.RiderStatusType(r.Status),
		WorkStatus: entities.RiderWorkStatusType(r.WorkStatus),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func ToDomainList(models []RiderDB) []entities.Rider {
	riders := make([]entities.Rider, 0, len(models))
	for i := range models {
		riders = append(riders, *ToDomain(&models[i]))
	}
	return riders
}

func FromDomainModify(r *entities.RiderModify) *RiderModifyDB {
	if r == nil {
		return nil
	}
	riderModifyDB := &RiderModifyDB{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		District: r.District,
	}

	if r.Status != nil {
		status := r.Status.String()
		riderModifyDB.Status = &status
	}
	if r.WorkStatus != nil {
		workStatus := r.WorkStatus.String()
		riderModifyDB.WorkStatus = &workStatus
	}

	return riderModifyDB
}
