package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/middleware"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// Login exchanges an email and password for a signed token
func Login(db *sqlx.DB, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !bindBody(w, r, &req) {
			return
		}

		if jwtSecret == "" {
			utils.Logger.Error("❌ JWT secret not configured")
			utils.RespondError(w, http.StatusInternalServerError, "Authentication is not configured")
			return
		}

		utils.Logger.Infof("🔐 Login attempt for: %s", req.Email)

		user, err := database.GetUserByEmail(r.Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				utils.Logger.Warnf("❌ User not found: %s", req.Email)
				utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			respondStoreError(w, r, err, "Failed to log in")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			utils.Logger.Warnf("❌ Invalid password for: %s", req.Email)
			utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := middleware.IssueToken(jwtSecret, user)
		if err != nil {
			respondStoreError(w, r, err, "Failed to create token")
			return
		}

		utils.Logger.Infof("✅ Login successful: %s (%s)", user.Email, user.Role)
		utils.RespondData(w, http.StatusOK, models.LoginResponse{
			Token: token,
			User:  user.ToUserResponse(),
		})
	}
}
