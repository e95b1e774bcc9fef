package mappers

import (
	"io"

	"github.com/google/uuid"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

// UploadForm is a validated assumption upload.
type UploadForm struct {
	Name     string
	Filename string
	File     io.Reader
}

type AssumptionUpdateForm struct {
	Status       *string
	StatusDetail *string
	DownloadLink *string
}

type SimulationForm struct {
	RunID          string
	Name           string
	AssumptionName *string
	Status         string
}

func (f SimulationForm) ToSimulation() model.Simulation {
	s := model.Simulation{
		RunID:          f.RunID,
		Name:           f.Name,
		AssumptionName: f.AssumptionName,
		Status:         f.Status,
	}
	if s.RunID == "" {
		s.RunID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = model.SimulationStatusCreated
	}
	return s
}

func (f SimulationForm) Apply(s *model.Simulation) *model.Simulation {
	if f.Name != "" {
		s.Name = f.Name
	}
	if f.Status != "" {
		s.Status = f.Status
	}
	s.AssumptionName = f.AssumptionName
	return s
}
