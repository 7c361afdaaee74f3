package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func setupAuthTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{})
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func TestOptionalAuthMiddleware(t *testing.T) {
	setupTestConfig()
	mr := setupMockRedis()
	defer mr.Close()
	setupAuthTestDB()

	gin.SetMode(gin.TestMode)

	user := models.User{Email: "user@test.com", Nickname: "user", Role: "user", Enabled: true}
	database.DB.Create(&user)

	tests := []struct {
		name       string
		authHeader string
		wantUser   bool
	}{
		{
			name:       "No Header Passes Through Anonymously",
			authHeader: "",
			wantUser:   false,
		},
		{
			name:       "Garbage Token Passes Through Anonymously",
			authHeader: "Bearer not.a.token",
			wantUser:   false,
		},
		{
			name:       "Valid Token Resolves The Caller",
			authHeader: "Bearer " + generateTestToken("user", false),
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawUser bool
			r := gin.New()
			r.Use(OptionalAuthMiddleware())
			r.GET("/public", func(c *gin.Context) {
				_, sawUser = c.Get("user")
				c.String(http.StatusOK, "Success")
			})

			req, _ := http.NewRequest(http.MethodGet, "/public", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantUser, sawUser)
		})
	}
}
