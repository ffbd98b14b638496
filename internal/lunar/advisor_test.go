package lunar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tartampluch/go-geminids/internal/lunar"
)

// MockProvider records which instants the advisor asks about.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Phase(t time.Time) float64 {
	args := m.Called(t)
	return args.Get(0).(float64)
}

func fixedPhase(p float64) lunar.PhaseProvider {
	return lunar.PhaseFunc(func(time.Time) float64 { return p })
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		phase float64
		want  lunar.PhaseKey
	}{
		{0, lunar.New},
		{0.029999, lunar.New},
		{0.03, lunar.WaxingCrescent},
		{0.21999, lunar.WaxingCrescent},
		{0.22, lunar.FirstQuarter},
		{0.25, lunar.FirstQuarter},
		{0.28, lunar.WaxingGibbous},
		{0.46999, lunar.WaxingGibbous},
		{0.47, lunar.Full},
		{0.50, lunar.Full},
		{0.52999, lunar.Full},
		{0.53, lunar.WaningGibbous},
		{0.72, lunar.LastQuarter},
		{0.75, lunar.LastQuarter},
		{0.78, lunar.WaningCrescent},
		{0.96999, lunar.WaningCrescent},
		{0.97, lunar.New},
		{0.99999, lunar.New},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lunar.Classify(tt.phase), "Classify(%v)", tt.phase)
	}
}

func TestAdvisor_ExactFullMoon(t *testing.T) {
	a := lunar.NewAdvisor(fixedPhase(0.50))
	info := a.Info(time.Date(2025, 12, 13, 23, 8, 0, 0, time.UTC), 2025)

	assert.Equal(t, lunar.Full, info.Phase)
	assert.Equal(t, "满月", info.Description)
	assert.NotEmpty(t, info.Advice)
}

// TestAdvisor_QueriesGivenDate ensures the provider is asked about the date passed in,
// not about "now".
func TestAdvisor_QueriesGivenDate(t *testing.T) {
	date := time.Date(2024, 12, 13, 17, 18, 57, 0, time.UTC)
	p := new(MockProvider)
	p.On("Phase", date).Return(0.44).Once()

	info := lunar.NewAdvisor(p).Info(date, 2024)

	assert.Equal(t, lunar.WaxingGibbous, info.Phase)
	p.AssertExpectations(t)
}

func TestAdvisor_DeterministicPerYear(t *testing.T) {
	a := lunar.NewAdvisor(fixedPhase(0.10))
	date := time.Date(2026, 12, 14, 5, 0, 0, 0, time.UTC)

	first := a.Info(date, 2026)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Info(date, 2026))
	}

	// Four tips per bucket: consecutive years walk through all of them.
	seen := map[string]bool{}
	for year := 2024; year < 2028; year++ {
		seen[a.Info(date, year).Advice] = true
	}
	assert.Len(t, seen, 4)
}

func TestAdviceFor_YearModulo(t *testing.T) {
	// 2024 % 4 == 0 and 2025 % 4 == 1.
	assert.Equal(t, "月亮彻底躲起来啦！夜空黑漆漆的，是流星雨最完美的舞台，千万别眨眼！", lunar.AdviceFor(lunar.New, 2024))
	assert.Equal(t, "完美时刻！月亮不在家，夜空黑得像墨水，连最害羞的小流星都能看见哦。", lunar.AdviceFor(lunar.New, 2025))
	assert.Equal(t, lunar.AdviceFor(lunar.Full, 2024), lunar.AdviceFor(lunar.Full, 2028))
}

func TestAdviceFor_NegativeYearStaysInRange(t *testing.T) {
	assert.Equal(t, lunar.AdviceFor(lunar.LastQuarter, 3), lunar.AdviceFor(lunar.LastQuarter, -1))
	assert.Empty(t, lunar.AdviceFor(lunar.PhaseKey("Blue"), 2025))
}

func TestDescription_AllBuckets(t *testing.T) {
	assert.Len(t, lunar.PhaseKeys, 8)
	for _, k := range lunar.PhaseKeys {
		assert.NotEmpty(t, lunar.Description(k), "bucket %s", k)
		assert.NotEmpty(t, lunar.AdviceFor(k, 2025), "bucket %s", k)
	}
}

func TestNewAdvisor_DefaultsToSunCalc(t *testing.T) {
	a := lunar.NewAdvisor(nil)
	assert.IsType(t, lunar.SunCalc{}, a.Provider)
}
