package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "recipehub/internal/delivery/http/middleware"
	"recipehub/internal/delivery/http/validator"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	mockUC "recipehub/internal/mocks/usecase"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the same validator and error
// handler the real server uses, so error envelopes match production.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	return e
}

// serve runs a handler func through the full echo pipeline.
func serve(e *echo.Echo, method, target, body string, setup func(c echo.Context), h echo.HandlerFunc) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRecipeHandler_Get_NotFound(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().GetRecipe(mock.Anything, int64(9)).Return(nil, domainerrors.ErrRecipeNotFound)

	rec := serve(e, http.MethodGet, "/recipes/9", "", func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("9")
	}, h.Get)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RECIPE_NOT_FOUND")
}

func TestRecipeHandler_Get_InvalidID(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	rec := serve(e, http.MethodGet, "/recipes/abc", "", func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("abc")
	}, h.Get)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetRecipe", mock.Anything, mock.Anything)
}

func TestRecipeHandler_Create_Success(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		CreateRecipe(mock.Anything, mock.AnythingOfType("*usecase.CreateRecipeInput")).
		Return(&entity.Recipe{ID: 1, Title: "Pancakes", UserID: 5}, nil)

	body := `{"title":"Pancakes","content":"Mix and fry.","user_id":5}`
	rec := serve(e, http.MethodPost, "/recipes", body, nil, h.Create)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Pancakes"`)
}

func TestRecipeHandler_Create_MissingTitle(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	rec := serve(e, http.MethodPost, "/recipes", `{"user_id":5}`, nil, h.Create)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
}

func TestRecipeHandler_AddIngredient_RequiresIdentity(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	body := `{"ingredient_id":2}`
	rec := serve(e, http.MethodPost, "/recipes/1/ingredients", body, func(c echo.Context) {
		c.SetParamNames("recipe_id")
		c.SetParamValues("1")
	}, h.AddIngredient)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "AddIngredient", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeHandler_AddIngredient_Success(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		AddIngredient(mock.Anything, int64(1), int64(5), mock.AnythingOfType("*usecase.AddIngredientInput")).
		Return(nil)

	body := `{"ingredient_id":2,"quantity":"2 cups"}`
	rec := serve(e, http.MethodPost, "/recipes/1/ingredients", body, func(c echo.Context) {
		c.SetParamNames("recipe_id")
		c.SetParamValues("1")
		c.Set(custommiddleware.KeyUserID, int64(5))
	}, h.AddIngredient)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecipeHandler_Update_PassesActorIdentity(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		UpdateRecipe(mock.Anything, int64(1), mock.AnythingOfType("*int64"), mock.AnythingOfType("*usecase.UpdateRecipeInput")).
		RunAndReturn(func(ctx context.Context, id int64, actorID *int64, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
			require.NotNil(t, actorID)
			assert.Equal(t, int64(5), *actorID)
			return &entity.Recipe{ID: 1, Title: *input.Title, UserID: 5}, nil
		})

	rec := serve(e, http.MethodPut, "/recipes/1", `{"title":"New"}`, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("1")
		c.Set(custommiddleware.KeyUserID, int64(5))
	}, h.Update)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"New"`)
}

func TestRecipeHandler_Share_ReturnsPNG(t *testing.T) {
	uc := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc, newDiscardLogger())
	e := newTestEcho()

	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().ShareQR(mock.Anything, int64(1)).Return(png, nil)

	rec := serve(e, http.MethodGet, "/recipes/1/share", "", func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("1")
	}, h.Share)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
