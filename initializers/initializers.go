package initializers

import (
	"context"
	"recruit-backend/config"
	"recruit-backend/fiberlog"
	applicationhandler "recruit-backend/lib/application"
	contacthandler "recruit-backend/lib/contact"
	contactnotifyworker "recruit-backend/lib/contact/notify-worker"
	xlsexport "recruit-backend/lib/export/xls"
	feedbackhandler "recruit-backend/lib/feedback"
	interviewhandler "recruit-backend/lib/interview"
	jobposthandler "recruit-backend/lib/jobpost"
	profilehistoryhandler "recruit-backend/lib/profile-history"
	usershandler "recruit-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	xlsexport.NewHandler()
	usershandler.NewHandler()
	contacthandler.NewHandler(config.Conf.Contact.NotifyEmail)
	jobposthandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	feedbackhandler.NewHandler()
	profilehistoryhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Повторная отправка уведомлений об обращениях, не ушедших сразу
	contactnotifyworker.StartWorker(ctx, config.Conf.Contact.NotifyEmail)
}
