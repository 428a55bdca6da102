package journal

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleListTransfers(t *testing.T) {
	db, mock := setupMockDB(t)
	app := fiber.New()
	NewHandler(NewRepository(db, zap.NewNop())).RegisterRoutes(app)

	mock.ExpectQuery("SELECT \\* FROM `transfer_records` WHERE direction = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "direction"}).AddRow("a", "upload"))

	resp, err := app.Test(httptest.NewRequest("GET", "/transfers?direction=upload&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count     int              `json:"count"`
		Transfers []TransferRecord `json:"transfers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, DirectionUpload, body.Transfers[0].Direction)
}

func TestHandleListTransfers_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	app := fiber.New()
	NewHandler(NewRepository(db, zap.NewNop())).RegisterRoutes(app)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/transfers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	disabled := NewFeature(NewRepository(nil, zap.NewNop()))
	assert.Equal(t, "journal", disabled.Name())
	assert.False(t, disabled.IsEnabled())

	db, _ := setupMockDB(t)
	assert.True(t, NewFeature(NewRepository(db, zap.NewNop())).IsEnabled())
}
