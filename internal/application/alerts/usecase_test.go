package alerts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/alerts"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type memAlertRepo struct{ byID map[string]entity.Alert }

func (r *memAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	r.byID[a.ID] = *a
	return nil
}

func (r *memAlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAlertRepo) List(_ context.Context) ([]*entity.Alert, error) {
	out := make([]*entity.Alert, 0, len(r.byID))
	for _, a := range r.byID {
		cp := a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAlertRepo) UpdateStatus(_ context.Context, a *entity.Alert) error {
	r.byID[a.ID] = *a
	return nil
}

func newAlerts() (*alerts.AlertUseCase, *memAlertRepo) {
	repo := &memAlertRepo{byID: map[string]entity.Alert{}}
	return alerts.NewAlertUseCase(repo, logger.Nop()), repo
}

func validAlert() dto.CreateAlertRequest {
	return dto.CreateAlertRequest{
		Type: "ppe_violation", Severity: "high", Title: "Operario sin casco",
		CameraID: "cam-3", AIConfidence: decimal.RequireFromString("0.93"),
	}
}

func TestCreate_EstadoNew(t *testing.T) {
	uc, repo := newAlerts()
	a, err := uc.Create(context.Background(), validAlert())
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusNew, a.Status)
	assert.Contains(t, repo.byID, a.ID)
}

func TestCreate_SeveridadInvalida(t *testing.T) {
	uc, _ := newAlerts()
	in := validAlert()
	in.Severity = "urgente"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_SellaActor(t *testing.T) {
	uc, _ := newAlerts()
	a, err := uc.Create(context.Background(), validAlert())
	require.NoError(t, err)

	got, err := uc.UpdateStatus(context.Background(), "u1", a.ID, entity.AlertStatusAcknowledged)
	require.NoError(t, err)
	require.NotNil(t, got.AcknowledgedBy)
	assert.Equal(t, "u1", *got.AcknowledgedBy)
	assert.NotNil(t, got.AcknowledgedAt)
	assert.Nil(t, got.ResolvedBy)

	got, err = uc.UpdateStatus(context.Background(), "u2", a.ID, entity.AlertStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, "u2", *got.ResolvedBy)
	assert.Equal(t, "u1", *got.AcknowledgedBy)
}

func TestUpdateStatus_Errores(t *testing.T) {
	uc, _ := newAlerts()
	_, err := uc.UpdateStatus(context.Background(), "u1", "nope", entity.AlertStatusResolved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStatus(context.Background(), "u1", "nope", "cerrada")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
