package authutils

import (
	"recruit-backend/models"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	t.Run(`claims are signed with the secret`, func(t *testing.T) {
		tokenString, err := GetToken("secret", "user-id", "Анна Иванова", models.HrRole, time.Hour)
		require.Nil(t, err)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.Nil(t, err)
		require.Equal(t, "user-id", claims["sub"])
		require.Equal(t, "HR", claims["role"])
		require.Equal(t, "Анна Иванова", claims["name"])
	})

	t.Run(`wrong secret and expired token rejected`, func(t *testing.T) {
		tokenString, err := GetToken("secret", "user-id", "", models.AdminRole, time.Hour)
		require.Nil(t, err)
		_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("other"), nil
		})
		require.NotNil(t, err)

		expired, err := GetToken("secret", "user-id", "", models.AdminRole, -time.Minute)
		require.Nil(t, err)
		_, err = jwt.Parse(expired, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}
