package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoally/client/session"
)

func TestLoginParsesEnvelope(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "tok-xyz",
				"user": map[string]any{
					"id":       "42",
					"email":    "alex.johnson@email.com",
					"username": "EcoWarrior2024",
					"userType": "STUDENT",
				},
				"roleRecord": map[string]any{
					"points": 2100, "coins": 370,
					"currentStreak": 5, "longestStreak": 18, "streakShields": 1,
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	res, err := client.Login(context.Background(), Credentials{
		Identifier: "alex.johnson@email.com",
		Password:   "EcoLearn123!",
	})
	require.NoError(t, err)

	assert.Equal(t, "alex.johnson@email.com", gotBody["identifier"])
	assert.Equal(t, "tok-xyz", res.Token)
	assert.Equal(t, "STUDENT", res.User.UserType)
	require.NotNil(t, res.RoleRecord)
	assert.Equal(t, 370, res.RoleRecord.Coins)
	assert.Equal(t, 1, res.RoleRecord.StreakShields)
}

func TestLoginErrorBecomesAuthenticationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Unauthorized",
			"message": "Invalid credentials",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.Login(context.Background(), Credentials{Identifier: "x", Password: "y"})

	var ae *AuthenticationError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Invalid credentials", ae.Message)
}

func TestMeSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"user": map[string]any{"id": "42", "username": "EcoWarrior2024", "userType": "STUDENT"},
			},
		})
	}))
	defer srv.Close()

	tokens := session.NewMemStore()
	require.NoError(t, tokens.SetToken("persisted-token"))

	client := NewClient(srv.URL, tokens)
	res, err := client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer persisted-token", gotAuth)
	assert.Equal(t, "EcoWarrior2024", res.User.Username)
	assert.Nil(t, res.RoleRecord)
}

func TestPurchaseShieldErrorBecomesTransactionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Bad Request",
			"message": "Not enough coins to buy a shield",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.PurchaseShield(context.Background())

	var te *TransactionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Not enough coins to buy a shield", te.Message)
}

func TestPurchaseShieldSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/gamification/shields/purchase", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"coins": 120, "streakShields": 2},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	res, err := client.PurchaseShield(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, res.Coins)
	assert.Equal(t, 2, res.StreakShields)
}

func TestRegisterConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Conflict",
			"message": "Username already taken",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.Register(context.Background(), RegisterPayload{Username: "EcoWarrior2024"})

	var ae *AuthenticationError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Username already taken", ae.Message)
}
