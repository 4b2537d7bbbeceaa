package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motostock-api/models"
	"motostock-api/repositories"
)

type mockVerifier struct {
	authenticateFn func(username, password string) (*models.User, error)
}

func (m *mockVerifier) Authenticate(username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return nil, errors.New("not configured")
}

func TestLoginSuccess(t *testing.T) {
	admin := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	svc := NewAuthService(&mockVerifier{
		authenticateFn: func(username, password string) (*models.User, error) {
			if username == "admin" && password == "admin123" {
				return admin, nil
			}
			return nil, repositories.ErrInvalidCredentials
		},
	})

	if !svc.Login("admin", "admin123") {
		t.Fatal("Login with valid credentials returned false")
	}
	if !svc.IsAuthenticated() {
		t.Error("IsAuthenticated = false after successful login")
	}
	if !svc.IsAdmin() {
		t.Error("IsAdmin = false for admin account")
	}
	if got := svc.CurrentUser(); got == nil || got.Username != "admin" {
		t.Errorf("CurrentUser = %+v, want the admin account", got)
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	svc := NewAuthService(&mockVerifier{
		authenticateFn: func(username, password string) (*models.User, error) {
			return nil, repositories.ErrInvalidCredentials
		},
	})

	if svc.Login("admin", "wrong") {
		t.Fatal("Login with invalid credentials returned true")
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after failed login")
	}
	if svc.CurrentUser() != nil {
		t.Error("CurrentUser != nil after failed login")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	user := &models.User{ID: 2, Username: "worker", Role: models.RoleUser}
	svc := NewAuthService(&mockVerifier{
		authenticateFn: func(username, password string) (*models.User, error) {
			return user, nil
		},
	})

	svc.Login("worker", "pw")
	svc.Logout()

	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after logout")
	}
	if svc.IsAdmin() {
		t.Error("IsAdmin = true after logout")
	}
	if svc.CurrentUser() != nil {
		t.Error("CurrentUser != nil after logout")
	}
}

func TestSecondLoginReplacesSession(t *testing.T) {
	accounts := map[string]*models.User{
		"admin":  {ID: 1, Username: "admin", Role: models.RoleAdmin},
		"worker": {ID: 2, Username: "worker", Role: models.RoleUser},
	}
	svc := NewAuthService(&mockVerifier{
		authenticateFn: func(username, password string) (*models.User, error) {
			if u, ok := accounts[username]; ok {
				return u, nil
			}
			return nil, repositories.ErrInvalidCredentials
		},
	})

	svc.Login("admin", "pw")
	svc.Login("worker", "pw")

	if svc.IsAdmin() {
		t.Error("IsAdmin = true after a non-admin replaced the session")
	}
	if got := svc.CurrentUser(); got == nil || got.Username != "worker" {
		t.Errorf("CurrentUser = %+v, want the worker account", got)
	}
}

func TestNonAdminRole(t *testing.T) {
	user := &models.User{ID: 3, Username: "viewer", Role: models.RoleUser}
	svc := NewAuthService(&mockVerifier{
		authenticateFn: func(username, password string) (*models.User, error) {
			return user, nil
		},
	})

	svc.Login("viewer", "pw")
	if !svc.IsAuthenticated() {
		t.Error("IsAuthenticated = false for logged-in non-admin")
	}
	if svc.IsAdmin() {
		t.Error("IsAdmin = true for non-admin role")
	}
}

// End-to-end over a real repository: create an admin account, log in,
// check the role, log out.
func TestLoginScenarioAgainstRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := repositories.NewUserRepository(db)
	admin := models.User{Username: "admin", Role: models.RoleAdmin, Name: "Administrator"}
	if err := repo.Save(&admin, "admin123"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	svc := NewAuthService(repo)

	if svc.Login("admin", "wrong") {
		t.Fatal("Login succeeded with the wrong password")
	}
	if !svc.Login("admin", "admin123") {
		t.Fatal("Login failed with correct credentials")
	}
	if !svc.IsAdmin() {
		t.Error("IsAdmin = false after admin login")
	}

	svc.Logout()
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after logout")
	}
}
