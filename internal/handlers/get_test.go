package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/services"
)

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserGetter(ctrl)
	id := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful get",
			path: "/users/" + id.String(),
			setupMocks: func() {
				svc.EXPECT().Get(gomock.Any(), id).
					Return(&models.UserDB{UserID: id, Name: "John"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			path:           "/users/not-a-uuid",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "user not found",
			path: "/users/" + id.String(),
			setupMocks: func() {
				svc.EXPECT().Get(gomock.Any(), id).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			path: "/users/" + id.String(),
			setupMocks: func() {
				svc.EXPECT().Get(gomock.Any(), id).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	router := chi.NewRouter()
	router.Get("/users/{id}", NewGetUserHandler(svc))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
