package main

import (
	"recruit-backend/lib/client"
	"recruit-backend/lib/jobfilter"
	"recruit-backend/lib/views"
	applicationapimodels "recruit-backend/models/api/application"
	jobpostapimodels "recruit-backend/models/api/jobpost"

	"github.com/spf13/cobra"
)

func apiClient(cmd *cobra.Command) client.Provider {
	host, _ := cmd.Flags().GetString("host")
	token, _ := cmd.Flags().GetString("token")
	return client.NewProvider(host, token)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Список кандидатов",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := views.NewCandidateGridView(apiClient(cmd))
		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return v.Render(cmd.OutOrStdout())
	},
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates <job-post-id>",
	Short: "Кандидаты по вакансии",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := views.NewJobPostCandidatesView(apiClient(cmd), args[0])
		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return v.Render(cmd.OutOrStdout())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <application-id>",
	Short: "Статус отклика, с --set меняет статус",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient(cmd)
		newStatus, _ := cmd.Flags().GetString("set")
		comment, _ := cmd.Flags().GetString("comment")
		if newStatus != "" {
			if _, err := api.ChangeApplicationStatus(cmd.Context(), args[0], applicationStatusChange(newStatus, comment)); err != nil {
				return err
			}
		}
		v := views.NewApplicationStatusView(api, args[0])
		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return v.Render(cmd.OutOrStdout())
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Вакансии по фильтрам",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := jobfilter.NewStore(jobfilter.State{})
		for _, action := range filterActions(cmd) {
			store.Dispatch(action)
		}
		v := views.NewJobListView(apiClient(cmd), store)
		if err := v.Load(cmd.Context()); err != nil {
			return err
		}
		return v.Render(cmd.OutOrStdout())
	},
}

func filterActions(cmd *cobra.Command) []jobfilter.Action {
	flags := cmd.Flags()
	actions := []jobfilter.Action{}
	if flags.Changed("keyword") {
		value, _ := flags.GetString("keyword")
		actions = append(actions, jobfilter.SetKeyword{Value: value})
	}
	if flags.Changed("location") {
		value, _ := flags.GetString("location")
		actions = append(actions, jobfilter.SetLocation{Value: value})
	}
	if flags.Changed("category") {
		value, _ := flags.GetString("category")
		actions = append(actions, jobfilter.SetCategory{Value: value})
	}
	if flags.Changed("job-type") {
		value, _ := flags.GetString("job-type")
		actions = append(actions, jobfilter.SetJobType{Value: value})
	}
	if flags.Changed("date-posted") {
		value, _ := flags.GetString("date-posted")
		actions = append(actions, jobfilter.SetDatePosted{Value: jobpostapimodels.DatePosted(value)})
	}
	if flags.Changed("experience") {
		value, _ := flags.GetString("experience")
		actions = append(actions, jobfilter.SetExperience{Value: value})
	}
	if flags.Changed("salary-min") || flags.Changed("salary-max") {
		salaryMin, _ := flags.GetInt("salary-min")
		salaryMax, _ := flags.GetInt("salary-max")
		actions = append(actions, jobfilter.SetSalary{Value: jobpostapimodels.SalaryRange{Min: salaryMin, Max: salaryMax}})
	}
	if flags.Changed("tag") {
		value, _ := flags.GetString("tag")
		actions = append(actions, jobfilter.SetTag{Value: value})
	}
	return actions
}

func init() {
	for _, cmd := range []*cobra.Command{usersCmd, candidatesCmd, statusCmd, jobsCmd} {
		cmd.Flags().String("host", "http://127.0.0.1:8080", "адрес api")
		cmd.Flags().String("token", "", "токен бэк-офиса")
	}
	statusCmd.Flags().String("set", "", "новый статус отклика")
	statusCmd.Flags().String("comment", "", "комментарий к смене статуса")

	jobsCmd.Flags().String("keyword", "", "поиск по названию и описанию")
	jobsCmd.Flags().String("location", "", "город")
	jobsCmd.Flags().String("category", "", "категория")
	jobsCmd.Flags().String("job-type", "", "тип занятости")
	jobsCmd.Flags().String("date-posted", "", "all, last-hour, last-24-hours, last-7-days, last-14-days, last-30-days")
	jobsCmd.Flags().String("experience", "", "опыт")
	jobsCmd.Flags().Int("salary-min", 0, "зарплата от")
	jobsCmd.Flags().Int("salary-max", 0, "зарплата до")
	jobsCmd.Flags().String("tag", "", "тег")

	rootCmd.AddCommand(usersCmd, candidatesCmd, statusCmd, jobsCmd)
}

func applicationStatusChange(status, comment string) applicationapimodels.StatusChange {
	return applicationapimodels.StatusChange{Status: status, Comment: comment}
}
