//go:build integration

package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymload/internal/gymstats/analysis"
	"github.com/2beens/gymload/internal/gymstats/exercises"
	"github.com/2beens/gymload/internal/gymstats/programs"
	"github.com/2beens/gymload/internal/workload"
)

func percent(p float64) *float64 {
	return &p
}

var (
	benchPress = exercises.Definition{ExerciseDefinition: workload.ExerciseDefinition{
		ID:             "bench_press",
		Name:           "Bench Press",
		Target:         workload.Muscle{ID: "chest", Name: "Chest", BodyPart: "chest"},
		PrimaryPercent: percent(70),
		Secondary: []workload.SecondaryMuscle{
			{Muscle: workload.Muscle{ID: "triceps", Name: "Triceps", BodyPart: "upper arms"}, ContributionPercent: 30},
		},
	}}
	barbellRow = exercises.Definition{ExerciseDefinition: workload.ExerciseDefinition{
		ID:             "barbell_row",
		Name:           "Barbell Row",
		Target:         workload.Muscle{ID: "back", Name: "Back", BodyPart: "back"},
		PrimaryPercent: percent(80),
		Secondary: []workload.SecondaryMuscle{
			{Muscle: workload.Muscle{ID: "biceps", Name: "Biceps", BodyPart: "upper arms"}, ContributionPercent: 20},
		},
	}}
)

func (s *IntegrationTestSuite) do(method, path string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) addDefinition(def exercises.Definition) {
	status, body := s.do(http.MethodPost, "/gymstats/exercises", def)
	s.Require().Equal(http.StatusCreated, status, string(body))
}

func (s *IntegrationTestSuite) addProgram(program programs.Program) programs.Program {
	status, body := s.do(http.MethodPost, "/gymstats/programs", program)
	s.Require().Equal(http.StatusCreated, status, string(body))

	var added programs.Program
	s.Require().NoError(json.Unmarshal(body, &added))
	s.Require().NotEmpty(added.ID)
	return added
}

func (s *IntegrationTestSuite) analyzeProgram(id string) analysis.ProgramAnalysis {
	status, body := s.do(http.MethodGet, fmt.Sprintf("/gymstats/programs/%s/analysis", id), nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var res analysis.ProgramAnalysis
	s.Require().NoError(json.Unmarshal(body, &res))
	return res
}

func upperLower() programs.Program {
	return programs.Program{
		Name: "Upper / Lower",
		Days: []workload.Day{
			{Name: "Push", Entries: []workload.PlannedEntry{
				{ExerciseID: "bench_press", Sets: 4, MinReps: 8, MaxReps: 12},
				{ExerciseID: "dips", Sets: 3, MinReps: 8, MaxReps: 12},
			}},
			{Name: "Pull", Entries: []workload.PlannedEntry{
				{ExerciseID: "barbell_row", Sets: 4, MinReps: 8, MaxReps: 12},
			}},
		},
	}
}

func (s *IntegrationTestSuite) TestDefinitions_CRUD() {
	s.addDefinition(benchPress)

	status, _ := s.do(http.MethodPost, "/gymstats/exercises", benchPress)
	s.Equal(http.StatusConflict, status)

	status, body := s.do(http.MethodGet, "/gymstats/exercises/bench_press/summary", nil)
	s.Require().Equal(http.StatusOK, status)
	var summary exercises.SummaryResponse
	s.Require().NoError(json.Unmarshal(body, &summary))
	s.Equal("Chest (70%), Triceps (30%)", summary.Summary)

	updated := benchPress
	updated.PrimaryPercent = percent(60)
	status, _ = s.do(http.MethodPut, "/gymstats/exercises/bench_press", updated)
	s.Equal(http.StatusNoContent, status)

	status, body = s.do(http.MethodGet, "/gymstats/exercises/bench_press", nil)
	s.Require().Equal(http.StatusOK, status)
	var got exercises.Definition
	s.Require().NoError(json.Unmarshal(body, &got))
	s.Require().NotNil(got.PrimaryPercent)
	s.Equal(60.0, *got.PrimaryPercent)
	s.Require().Len(got.Secondary, 1)
	s.Equal("Triceps", got.Secondary[0].Name)

	status, _ = s.do(http.MethodDelete, "/gymstats/exercises/bench_press", nil)
	s.Equal(http.StatusNoContent, status)
	status, _ = s.do(http.MethodGet, "/gymstats/exercises/bench_press", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestDayDistribution() {
	s.addDefinition(benchPress)
	s.addDefinition(barbellRow)
	program := s.addProgram(upperLower())

	status, body := s.do(http.MethodGet, fmt.Sprintf("/gymstats/programs/%s/days/0/distribution", program.ID), nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var dist analysis.DayDistribution
	s.Require().NoError(json.Unmarshal(body, &dist))
	s.Equal("Push", dist.DayName)
	s.Equal(40.0, dist.TotalVolume)
	s.Equal(1, dist.SkippedEntries)
	s.Require().Len(dist.Muscles, 2)
	s.Equal("Chest", dist.Muscles[0].MuscleName)
	s.Equal(70, dist.Muscles[0].PercentageOfTotal)
	s.Equal("Triceps", dist.Muscles[1].MuscleName)
	s.Equal(30, dist.Muscles[1].PercentageOfTotal)

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/gymstats/programs/%s/days/5/distribution", program.ID), nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestProgramAnalysis_CacheInvalidation() {
	s.addDefinition(benchPress)
	s.addDefinition(barbellRow)
	program := s.addProgram(upperLower())

	first := s.analyzeProgram(program.ID)
	s.Equal(program.ID, first.ProgramID)
	s.Equal(80.0, first.Analysis.TotalVolume)
	s.Equal(1, first.Analysis.SkippedEntries)
	s.Len(first.Analysis.Muscles, 4)
	for _, m := range first.Analysis.Muscles {
		s.Equal(workload.StatusUndertrained, m.Status, m.MuscleName)
	}

	// served from cache
	s.Equal(first, s.analyzeProgram(program.ID))

	// a new catalog entry for the skipped exercise invalidates the cached result
	s.addDefinition(exercises.Definition{ExerciseDefinition: workload.ExerciseDefinition{
		ID:     "dips",
		Name:   "Dips",
		Target: workload.Muscle{ID: "triceps", Name: "Triceps", BodyPart: "upper arms"},
	}})
	second := s.analyzeProgram(program.ID)
	s.Equal(0, second.Analysis.SkippedEntries)
	s.Equal(110.0, second.Analysis.TotalVolume)

	status, _ := s.do(http.MethodDelete, "/gymstats/programs/"+program.ID, nil)
	s.Equal(http.StatusNoContent, status)
	status, _ = s.do(http.MethodGet, fmt.Sprintf("/gymstats/programs/%s/analysis", program.ID), nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestAnalyzePlan() {
	s.addDefinition(benchPress)

	days := make([]workload.Day, 0, 3)
	for i := 0; i < 3; i++ {
		days = append(days, workload.Day{
			Name: fmt.Sprintf("Push %d", i+1),
			Entries: []workload.PlannedEntry{
				{ExerciseID: "bench_press", Sets: 8, MinReps: 6, MaxReps: 8},
			},
		})
	}

	status, body := s.do(http.MethodPost, "/gymstats/analysis", analysis.PlanRequest{Days: days})
	s.Require().Equal(http.StatusOK, status, string(body))

	var res workload.Analysis
	s.Require().NoError(json.Unmarshal(body, &res))
	s.Require().Len(res.Muscles, 2)
	s.Equal("Chest", res.Muscles[0].MuscleName)
	// 24 sets * 0.7
	s.InDelta(16.8, res.Muscles[0].TotalSets, 1e-9)
	s.Equal(workload.StatusOptimal, res.Muscles[0].Status)

	status, _ = s.do(http.MethodPost, "/gymstats/analysis", analysis.PlanRequest{Days: []workload.Day{
		{Name: "bad", Entries: []workload.PlannedEntry{{ExerciseID: "bench_press", Sets: 0, MinReps: 8, MaxReps: 12}}},
	}})
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestComparePrograms() {
	s.addDefinition(benchPress)
	s.addDefinition(barbellRow)
	a := s.addProgram(upperLower())
	b := s.addProgram(programs.Program{
		Name: "Pull only",
		Days: []workload.Day{{Name: "Pull", Entries: []workload.PlannedEntry{
			{ExerciseID: "barbell_row", Sets: 5, MinReps: 5, MaxReps: 5},
		}}},
	})

	status, body := s.do(http.MethodGet, fmt.Sprintf("/gymstats/analysis/programs?ids=%s,%s", b.ID, a.ID), nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var res []analysis.ProgramAnalysis
	s.Require().NoError(json.Unmarshal(body, &res))
	s.Require().Len(res, 2)
	s.Equal("Pull only", res[0].ProgramName)
	s.Equal("Upper / Lower", res[1].ProgramName)
}
