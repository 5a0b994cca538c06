package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanetsHandler(t *testing.T) {
	seeded := []models.Planet{
		{PlanetID: 1, PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
		{PlanetID: 2, PlanetName: "Venus", PlanetType: "Class K", HomeStar: "sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
		{PlanetID: 3, PlanetName: "Earth", PlanetType: "Class M", HomeStar: "sol", Mass: 5.972e25, Radius: 3959, Distance: 92.96e6},
	}

	t.Run("lists all planets with every field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockPlanetLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return(seeded, nil)

		rr := httptest.NewRecorder()
		NewPlanetsHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/planets", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		var raw []map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		require.Len(t, raw, 3)
		for _, p := range raw {
			for _, field := range []string{"planet_id", "planet_name", "planet_type", "home_star", "mass", "radius", "distance"} {
				assert.Contains(t, p, field)
			}
		}

		var planets []models.Planet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &planets))
		assert.Equal(t, seeded, planets)
	})

	t.Run("empty catalog is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockPlanetLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewPlanetsHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/planets", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockPlanetLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewPlanetsHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/planets", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
	})
}
