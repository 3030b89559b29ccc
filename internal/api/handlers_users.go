package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/otsubo234039/NewsAPP/internal/store"
)

type userParams struct {
	Name                 string `json:"name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Email                string `json:"email"`
}

type createUserRequest struct {
	User userParams `json:"user"`
}

// handleCreateUser serves POST /api/users (signup).
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []string
	name := strings.TrimSpace(req.User.Name)
	if name == "" {
		errs = append(errs, "名前を入力してください")
	}
	if req.User.Password == "" {
		errs = append(errs, "パスワードを入力してください")
	} else if len(req.User.Password) < 6 {
		errs = append(errs, "パスワードは6文字以上で入力してください")
	}
	if req.User.Password != req.User.PasswordConfirmation {
		errs = append(errs, "パスワードが一致しません")
	}
	if len(errs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	id, err := s.store.CreateUser(r.Context(), name, req.User.Email, string(hash))
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": []string{"この名前は既に使われています"},
		})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"user": map[string]any{"id": id, "name": name},
	})
}

type sessionRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// handleCreateSession serves POST /api/sessions (login). On success a JWT
// is returned in the body and set as an HttpOnly cookie.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.GetUserByName(r.Context(), req.Name)
	if err != nil {
		s.logger.Error("lookup user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "認証に失敗しました")
		return
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		s.logger.Error("sign token failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	setSessionCookie(w, token)

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// handleDeleteSession serves DELETE /api/sessions (logout).
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type userCategoriesRequest struct {
	UserID        int64    `json:"user_id"`
	CategorySlugs []string `json:"category_slugs"`
	CategoryIDs   []int64  `json:"category_ids"`
}

// handleUserCategories serves POST /api/user_categories: it links the
// given categories (by slug or id) to a user. Unknown categories are
// dropped rather than rejected, and repeats are idempotent.
func (s *Server) handleUserCategories(w http.ResponseWriter, r *http.Request) {
	var req userCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.GetUserByID(r.Context(), req.UserID)
	if err != nil {
		s.logger.Error("lookup user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	cats, err := s.resolveCategories(r, &req)
	if err != nil {
		s.logger.Error("resolve categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}

	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}

	created, err := s.store.AttachCategories(r.Context(), user.ID, ids)
	if err != nil {
		s.logger.Error("attach categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}

	total, err := s.store.CountUserCategories(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("count categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save categories")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"created": created,
		"total":   total,
	})
}

func (s *Server) resolveCategories(r *http.Request, req *userCategoriesRequest) ([]store.Category, error) {
	if len(req.CategorySlugs) > 0 {
		return s.store.CategoriesBySlugs(r.Context(), req.CategorySlugs)
	}
	return s.store.CategoriesByIDs(r.Context(), req.CategoryIDs)
}

// handleGetMe serves GET /api/users/me for the authenticated user.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUserByID(r.Context(), userID(r))
	if err != nil {
		s.logger.Error("lookup user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}
