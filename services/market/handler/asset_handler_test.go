package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"domain-market/internal/marketerrors"
	"domain-market/internal/models"
	"domain-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sampleRegistration(owner string) models.Registration {
	return models.Registration{Asset: "d1.ao", Owner: owner, RegisteredAt: t0, UpdatedAt: t0.Add(time.Minute)}
}

// Test asset registry handlers
func TestAssetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	handler := NewMarketHandler(mockService)

	router := gin.New()
	router.POST("/assets", handler.RegisterAssetHandler)
	router.GET("/assets/:asset", handler.GetAssetHandler)
	router.POST("/assets/:asset/transfer", handler.TransferAssetHandler)
	router.POST("/assets/:asset/verify", handler.VerifyOwnershipHandler)

	transfer := models.OwnershipTransaction{
		ID: "tx_1", Type: models.OwnershipTransfer, Asset: "d1.ao", From: "S", To: "B", Timestamp: t0,
	}

	tests := []struct {
		name           string
		method, url    string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "register_success", method: http.MethodPost, url: "/assets",
			requestBody: helpers.RegisterAssetRequest{Asset: "d1.ao", Owner: "S"},
			mockSetup: func() {
				mockService.EXPECT().RegisterAsset("d1.ao", "S").Return(sampleRegistration("S"), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "asset registered successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "S", data["owner"])
				require.Equal(t, "2026-03-01T12:00:00Z", data["registered_at"])
			},
		},
		{
			name: "register_missing_owner", method: http.MethodPost, url: "/assets",
			requestBody:    helpers.RegisterAssetRequest{Asset: "d1.ao"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "register_malformed_name", method: http.MethodPost, url: "/assets",
			requestBody: helpers.RegisterAssetRequest{Asset: "D1.com", Owner: "S"},
			mockSetup: func() {
				mockService.EXPECT().RegisterAsset("D1.com", "S").
					Return(models.Registration{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidAsset))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid asset details",
		},
		{
			name: "register_twice", method: http.MethodPost, url: "/assets",
			requestBody: helpers.RegisterAssetRequest{Asset: "d1.ao", Owner: "X"},
			mockSetup: func() {
				mockService.EXPECT().RegisterAsset("d1.ao", "X").
					Return(models.Registration{}, fmt.Errorf("service: %w", marketerrors.ErrAlreadyRegistered))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "asset already registered",
		},
		{
			name: "get_success", method: http.MethodGet, url: "/assets/d1.ao",
			mockSetup: func() {
				mockService.EXPECT().GetAsset("d1.ao").Return(sampleRegistration("S"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "asset retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "d1.ao", data["asset"])
			},
		},
		{
			name: "get_unregistered", method: http.MethodGet, url: "/assets/d9.ao",
			mockSetup: func() {
				mockService.EXPECT().GetAsset("d9.ao").Return(models.Registration{}, marketerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "not found",
		},
		{
			name: "transfer_success", method: http.MethodPost, url: "/assets/d1.ao/transfer",
			requestBody: helpers.TransferAssetRequest{From: "S", To: "B"},
			mockSetup: func() {
				mockService.EXPECT().TransferAsset("d1.ao", "S", "B").Return(transfer, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "asset transferred successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "TRANSFER", data["type"])
				require.Equal(t, "B", data["to"])
				require.NotContains(t, data, "amount")
			},
		},
		{
			name: "transfer_by_stranger", method: http.MethodPost, url: "/assets/d1.ao/transfer",
			requestBody: helpers.TransferAssetRequest{From: "X", To: "B"},
			mockSetup: func() {
				mockService.EXPECT().TransferAsset("d1.ao", "X", "B").
					Return(models.OwnershipTransaction{}, fmt.Errorf("service: %w", marketerrors.ErrNotOwner))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not the owner of this asset",
		},
		{
			name: "transfer_during_auction", method: http.MethodPost, url: "/assets/d1.ao/transfer",
			requestBody: helpers.TransferAssetRequest{From: "S", To: "B"},
			mockSetup: func() {
				mockService.EXPECT().TransferAsset("d1.ao", "S", "B").
					Return(models.OwnershipTransaction{}, fmt.Errorf("service: %w", marketerrors.ErrAssetLocked))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "asset is under auction",
		},
		{
			name: "transfer_to_self", method: http.MethodPost, url: "/assets/d1.ao/transfer",
			requestBody: helpers.TransferAssetRequest{From: "S", To: "S"},
			mockSetup: func() {
				mockService.EXPECT().TransferAsset("d1.ao", "S", "S").
					Return(models.OwnershipTransaction{}, marketerrors.ErrInvalidTransfer)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid transfer details",
		},
		{
			name: "verify_not_owner", method: http.MethodPost, url: "/assets/d1.ao/verify",
			requestBody: helpers.VerifyOwnershipRequest{Address: "X"},
			mockSetup: func() {
				mockService.EXPECT().VerifyOwnership("d1.ao", "X").Return(models.VerificationRecord{
					Asset: "d1.ao", Owner: "S", VerifiedBy: "X", VerifiedAt: t0,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "ownership verified",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, false, data["is_owner"])
				require.Equal(t, "S", data["owner"])
			},
		},
		{
			name: "verify_missing_address", method: http.MethodPost, url: "/assets/d1.ao/verify",
			requestBody:    `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doRequest(t, router, tc.method, tc.url, tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test AssetHistoryHandler
func TestAssetHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	handler := NewMarketHandler(mockService)

	router := gin.New()
	router.GET("/assets/:asset/history", handler.AssetHistoryHandler)

	t.Run("ordered_entries", func(t *testing.T) {
		mockService.EXPECT().AssetHistory("d1.ao").Return([]models.OwnershipTransaction{
			{ID: "tx_1", Type: models.OwnershipRegistration, Asset: "d1.ao", From: "S", Timestamp: t0},
			{ID: "hash1", Type: models.OwnershipTransfer, Asset: "d1.ao", From: "S", To: "B", Amount: 200, Timestamp: t0.Add(time.Hour)},
		}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/assets/d1.ao/history", nil)
		require.Equal(t, http.StatusOK, status)

		entries := resp["data"].([]any)
		require.Len(t, entries, 2)
		require.Equal(t, "REGISTRATION", entries[0].(map[string]any)["type"])
		last := entries[1].(map[string]any)
		require.Equal(t, "hash1", last["id"])
		require.Equal(t, 200.0, last["amount"])
	})

	t.Run("empty_is_array", func(t *testing.T) {
		mockService.EXPECT().AssetHistory("d2.ao").Return(nil, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/assets/d2.ao/history", nil)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, []any{}, resp["data"])
	})

	t.Run("unregistered", func(t *testing.T) {
		mockService.EXPECT().AssetHistory("d9.ao").Return(nil, marketerrors.ErrNotFound)

		status, _ := doRequest(t, router, http.MethodGet, "/assets/d9.ao/history", nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}
