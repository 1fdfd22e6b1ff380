package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

type memRunRepo struct{ byID map[string]entity.ProductionRun }

func (r *memRunRepo) Create(_ context.Context, run *entity.ProductionRun) error {
	for _, existing := range r.byID {
		if existing.RunNumber == run.RunNumber {
			return domain.ErrDuplicate
		}
	}
	r.byID[run.ID] = *run
	return nil
}

func (r *memRunRepo) GetByRef(_ context.Context, ref string) (*entity.ProductionRun, error) {
	for _, run := range r.byID {
		if run.ID == ref || run.RunNumber == ref {
			cp := run
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRunRepo) List(_ context.Context, status string) ([]*entity.ProductionRun, error) {
	var out []*entity.ProductionRun
	for _, run := range r.byID {
		if status == "" || run.Status == status {
			cp := run
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRunRepo) Update(_ context.Context, run *entity.ProductionRun) error {
	if _, ok := r.byID[run.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[run.ID] = *run
	return nil
}

type memProducts struct{ byID map[string]*entity.Product }

func (m memProducts) Create(context.Context, *entity.Product) error { return nil }
func (m memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.byID[id], nil
}
func (m memProducts) GetBySKU(context.Context, string) (*entity.Product, error) { return nil, nil }
func (m memProducts) List(context.Context) ([]*entity.Product, error)           { return nil, nil }
func (m memProducts) UpdatePrice(context.Context, string, decimal.Decimal) error {
	return nil
}

var fixedNow = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func newProduction() (*production.ProductionUseCase, *memRunRepo) {
	repo := &memRunRepo{byID: map[string]entity.ProductionRun{}}
	products := memProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Pan integral", SKU: "PAN-INT"},
	}}
	return production.NewProductionUseCase(repo, products, func() time.Time { return fixedNow }, logger.Nop()), repo
}

func createRun(t *testing.T, uc *production.ProductionUseCase, number string) *entity.ProductionRun {
	t.Helper()
	run, err := uc.Create(context.Background(), "user-1", production.CreateRunInput{
		RunNumber: number, ProductID: "p1", Quantity: 50,
	})
	require.NoError(t, err)
	return run
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestCreate_PlannedPorDefecto(t *testing.T) {
	uc, repo := newProduction()

	run := createRun(t, uc, "run_001")

	assert.Equal(t, entity.RunStatusPlanned, run.Status)
	assert.Equal(t, "Pan integral", run.ProductName)
	assert.Equal(t, "user-1", run.CreatedBy)
	assert.False(t, run.MachineStopped)
	assert.Nil(t, run.CompletionDate)
	assert.Len(t, repo.byID, 1)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, repo := newProduction()
	ctx := context.Background()

	_, err := uc.Create(ctx, "u", production.CreateRunInput{RunNumber: " ", ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "u", production.CreateRunInput{RunNumber: "r", ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "u", production.CreateRunInput{RunNumber: "r", ProductID: "zz", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "u", production.CreateRunInput{RunNumber: "r", ProductID: "p1", Quantity: 1, Status: "done"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Create(ctx, "u", production.CreateRunInput{RunNumber: "r", ProductID: "p1", Quantity: 1, Status: entity.RunStatusCompleted})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	assert.Empty(t, repo.byID)
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	uc, _ := newProduction()
	createRun(t, uc, "run_001")
	_, err := uc.Create(context.Background(), "u", production.CreateRunInput{RunNumber: "run_001", ProductID: "p1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ─────────────────────────────────────────────────────────────────────────────
// Get / Update
// ─────────────────────────────────────────────────────────────────────────────

func TestGet_PorIDOPorNumero(t *testing.T) {
	uc, _ := newProduction()
	run := createRun(t, uc, "run_002")

	byNumber, err := uc.Get(context.Background(), "run_002")
	require.NoError(t, err)
	assert.Equal(t, run.ID, byNumber.ID)

	byID, err := uc.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, "run_002", byID.RunNumber)

	_, err = uc.Get(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CompletedSellaFecha(t *testing.T) {
	uc, repo := newProduction()
	run := createRun(t, uc, "run_003")

	got, err := uc.Update(context.Background(), "run_003", production.UpdateRunInput{Status: strp(entity.RunStatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, got.CompletionDate)
	assert.True(t, got.CompletionDate.Equal(fixedNow))
	assert.Equal(t, entity.RunStatusCompleted, repo.byID[run.ID].Status)

	archived, err := uc.ListArchived(context.Background())
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "run_003", archived[0].RunNumber)
}

func TestUpdate_TerminalNoCambiaDeEstado(t *testing.T) {
	uc, _ := newProduction()
	createRun(t, uc, "run_004")
	_, err := uc.Update(context.Background(), "run_004", production.UpdateRunInput{Status: strp(entity.RunStatusCancelled)})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "run_004", production.UpdateRunInput{Status: strp(entity.RunStatusInProgress)})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdate_EstadoDesconocido(t *testing.T) {
	uc, _ := newProduction()
	createRun(t, uc, "run_005")
	_, err := uc.Update(context.Background(), "run_005", production.UpdateRunInput{Status: strp("terminado")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdate_ParadaDeMaquina(t *testing.T) {
	uc, repo := newProduction()
	run := createRun(t, uc, "run_006")

	got, err := uc.Update(context.Background(), run.ID, production.UpdateRunInput{
		MachineStopped: boolp(true),
		StopReason:     strp("atasco en la banda"),
	})
	require.NoError(t, err)
	assert.True(t, got.MachineStopped)
	require.NotNil(t, repo.byID[run.ID].StopReason)
	assert.Equal(t, "atasco en la banda", *repo.byID[run.ID].StopReason)
	assert.Equal(t, entity.RunStatusPlanned, got.Status, "el estado no cambia si no se envía")
	assert.Nil(t, got.CompletionDate)
}

func TestList_Todas(t *testing.T) {
	uc, _ := newProduction()
	createRun(t, uc, "run_007")
	createRun(t, uc, "run_008")
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
