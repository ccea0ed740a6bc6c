package main

import (
	"fmt"
	"recruit-backend/config"
	"recruit-backend/db"
	usersstore "recruit-backend/lib/users/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Выпустить токен бэк-офиса для пользователя с ролью HR или ADMIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return errors.New("не указан email")
		}
		config.InitConfig()
		if config.Conf.Auth.JWTSecret == "" {
			return errors.New("не задан Auth.JWTSecret, бэк-офис работает без авторизации")
		}
		if err := connectDB(false); err != nil {
			return err
		}
		user, err := usersstore.NewInstance(db.DB).GetByEmail(email)
		if err != nil {
			return errors.Wrap(err, "ошибка получения пользователя")
		}
		if user == nil {
			return errors.Errorf("пользователь %s не найден", email)
		}
		if user.Role != models.HrRole && user.Role != models.AdminRole {
			return errors.Errorf("роль %s не дает доступа к бэк-офису", user.Role.ToHuman())
		}
		ttl := time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second
		token, err := authutils.GetToken(config.Conf.Auth.JWTSecret, user.ID, user.GetFullName(), user.Role, ttl)
		if err != nil {
			return errors.Wrap(err, "ошибка формирования токена")
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции БД",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitConfig()
		if err := connectDB(true); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "миграции применены")
		return nil
	},
}

func connectDB(migrate bool) error {
	conf := config.Conf.Database
	return db.Connect(conf.Host, conf.Port, conf.Name, conf.User, conf.Password, *conf.DebugMode, migrate)
}

func init() {
	tokenCmd.Flags().String("email", "", "email пользователя")
	rootCmd.AddCommand(tokenCmd, migrateCmd)
}
