package jobfilter

import jobpostapimodels "recruit-backend/models/api/jobpost"

// Action именованное изменение общего состояния фильтров
type Action interface {
	apply(state State) State
}

type SetKeyword struct{ Value string }

type SetLocation struct{ Value string }

type SetCategory struct{ Value string }

type SetJobType struct{ Value string }

type SetDatePosted struct{ Value jobpostapimodels.DatePosted }

type SetExperience struct{ Value string }

type SetSalary struct{ Value jobpostapimodels.SalaryRange }

type SetTag struct{ Value string }

// ResetFilters сбрасывает фильтры списка вакансий, состояние интерфейса не меняется
type ResetFilters struct{}

type ToggleSidebar struct{}

type SetSidebar struct{ Open bool }

func (a SetKeyword) apply(state State) State {
	state.JobList.Keyword = a.Value
	return state
}

func (a SetLocation) apply(state State) State {
	state.JobList.Location = a.Value
	return state
}

func (a SetCategory) apply(state State) State {
	state.JobList.Category = a.Value
	return state
}

func (a SetJobType) apply(state State) State {
	state.JobList.JobType = a.Value
	return state
}

func (a SetDatePosted) apply(state State) State {
	state.JobList.DatePosted = a.Value
	return state
}

func (a SetExperience) apply(state State) State {
	state.JobList.Experience = a.Value
	return state
}

func (a SetSalary) apply(state State) State {
	state.JobList.Salary = a.Value
	return state
}

func (a SetTag) apply(state State) State {
	state.JobList.Tag = a.Value
	return state
}

func (a ResetFilters) apply(state State) State {
	state.JobList = jobpostapimodels.JobPostFilter{}
	return state
}

func (a ToggleSidebar) apply(state State) State {
	state.UI.SidebarOpen = !state.UI.SidebarOpen
	return state
}

func (a SetSidebar) apply(state State) State {
	state.UI.SidebarOpen = a.Open
	return state
}
