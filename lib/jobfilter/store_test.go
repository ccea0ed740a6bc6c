package jobfilter

import (
	jobpostapimodels "recruit-backend/models/api/jobpost"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run(`salary update keeps other slices`, func(t *testing.T) {
		state := State{JobList: jobpostapimodels.JobPostFilter{Location: "Москва", Category: "IT"}}
		next := Reduce(state, SetSalary{Value: jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}})
		require.Equal(t, jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}, next.JobList.Salary)
		require.Equal(t, "Москва", next.JobList.Location)
		require.Equal(t, "IT", next.JobList.Category)
		require.Equal(t, jobpostapimodels.SalaryRange{}, state.JobList.Salary)
	})

	t.Run(`each action writes its slice`, func(t *testing.T) {
		state := State{}
		for _, action := range []Action{
			SetKeyword{Value: "go"},
			SetLocation{Value: "Казань"},
			SetCategory{Value: "IT"},
			SetJobType{Value: "full-time"},
			SetDatePosted{Value: jobpostapimodels.PostedLastWeek},
			SetExperience{Value: "3-6"},
			SetTag{Value: "backend"},
			SetSidebar{Open: true},
		} {
			state = Reduce(state, action)
		}
		require.Equal(t, jobpostapimodels.JobPostFilter{
			Keyword:    "go",
			Location:   "Казань",
			Category:   "IT",
			JobType:    "full-time",
			DatePosted: jobpostapimodels.PostedLastWeek,
			Experience: "3-6",
			Tag:        "backend",
		}, state.JobList)
		require.True(t, state.UI.SidebarOpen)

		state = Reduce(state, ToggleSidebar{})
		require.False(t, state.UI.SidebarOpen)
		state = Reduce(Reduce(state, SetSidebar{Open: true}), ResetFilters{})
		require.Equal(t, jobpostapimodels.JobPostFilter{}, state.JobList)
		require.True(t, state.UI.SidebarOpen)
	})

	t.Run(`nil action`, func(t *testing.T) {
		state := State{UI: UI{SidebarOpen: true}}
		require.Equal(t, state, Reduce(state, nil))
	})
}

func TestStore(t *testing.T) {
	t.Run(`subscriber sees salary on next notification`, func(t *testing.T) {
		store := NewStore(State{JobList: jobpostapimodels.JobPostFilter{Location: "Москва", Category: "IT"}})
		var got []jobpostapimodels.SalaryRange
		unsubscribe := Subscribe(store, func(s State) jobpostapimodels.SalaryRange { return s.JobList.Salary }, func(v jobpostapimodels.SalaryRange) {
			got = append(got, v)
		})
		defer unsubscribe()

		store.Dispatch(SetSalary{Value: jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}})
		require.Equal(t, []jobpostapimodels.SalaryRange{{Min: 5000, Max: 10000}}, got)
		require.Equal(t, "Москва", store.State().JobList.Location)
		require.Equal(t, "IT", store.State().JobList.Category)
	})

	t.Run(`only changed slices notify`, func(t *testing.T) {
		store := NewStore(State{})
		jobListCalls, uiCalls := 0, 0
		Subscribe(store, JobListSlice, func(jobpostapimodels.JobPostFilter) { jobListCalls++ })
		Subscribe(store, UISlice, func(UI) { uiCalls++ })

		store.Dispatch(ToggleSidebar{})
		require.Equal(t, 0, jobListCalls)
		require.Equal(t, 1, uiCalls)

		store.Dispatch(SetKeyword{Value: "go"})
		store.Dispatch(SetKeyword{Value: "go"})
		require.Equal(t, 1, jobListCalls)
		require.Equal(t, 1, uiCalls)
	})

	t.Run(`unsubscribe`, func(t *testing.T) {
		store := NewStore(State{})
		calls := 0
		unsubscribe := Subscribe(store, UISlice, func(UI) { calls++ })
		store.Dispatch(ToggleSidebar{})
		unsubscribe()
		store.Dispatch(ToggleSidebar{})
		require.Equal(t, 1, calls)
	})

	t.Run(`concurrent dispatch`, func(t *testing.T) {
		store := NewStore(State{})
		var mu sync.Mutex
		calls := 0
		Subscribe(store, UISlice, func(UI) {
			mu.Lock()
			calls++
			mu.Unlock()
		})
		wg := sync.WaitGroup{}
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Dispatch(ToggleSidebar{})
				_ = store.State()
			}()
		}
		wg.Wait()
		require.Equal(t, 50, calls)
		require.False(t, store.State().UI.SidebarOpen)
	})
}
