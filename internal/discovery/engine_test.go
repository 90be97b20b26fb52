package discovery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/projecthub-backend/internal/discovery"
	"github.com/ignatzorin/projecthub-backend/internal/seed"
)

type recordingListener struct {
	snapshots []discovery.Snapshot
}

func (l *recordingListener) OnChange(s discovery.Snapshot) {
	l.snapshots = append(l.snapshots, s)
}

func (l *recordingListener) last() discovery.Snapshot {
	return l.snapshots[len(l.snapshots)-1]
}

func newSeedCatalog(t *testing.T) *discovery.Catalog {
	t.Helper()
	catalog, err := discovery.NewCatalog(seed.Projects(), seed.Categories)
	require.NoError(t, err)
	return catalog
}

func TestEngine_SampleScenario(t *testing.T) {
	listener := &recordingListener{}
	engine := discovery.NewEngine(newSeedCatalog(t), nil, listener)

	engine.SetStatus("open")
	assert.Len(t, engine.Results(), 5)

	engine.ToggleSkill("React")
	assert.Equal(t, []string{"1", "4"}, ids(engine.Results()))

	engine.SetText("blockchain")
	assert.Empty(t, engine.Results())
	assert.Equal(t, "search=blockchain&skills=React&status=open", engine.QueryString())

	require.Len(t, listener.snapshots, 3)
	assert.Empty(t, listener.last().Results)
	assert.Equal(t, engine.State(), listener.last().State)
}

func TestEngine_ClearAllRestoresCatalogOrder(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), nil, nil)

	engine.SetText("data")
	engine.SetCategory("Web Development")
	engine.ToggleSkill("SQL")
	engine.SetStatus("completed")
	assert.Empty(t, engine.Results())

	engine.ClearAll()
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(engine.Results()))
	assert.True(t, engine.State().IsDefault())
	assert.Empty(t, engine.Query())
}

func TestEngine_ToggleSkillPairIsIdentity(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), url.Values{"skills": {"Python"}}, nil)
	before := engine.State()

	engine.ToggleSkill("React")
	assert.Equal(t, []string{"Python", "React"}, engine.State().Skills)
	engine.ToggleSkill("React")
	assert.Equal(t, before, engine.State())

	engine.ToggleSkill("Python")
	engine.ToggleSkill("Python")
	assert.Equal(t, before, engine.State())
}

// Повторное включение навыка ставит его в конец списка: множество то же, порядок другой.
func TestEngine_ToggleSkillPairKeepsSkillSet(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), url.Values{"skills": {"React,SQL"}}, nil)
	before := engine.State()
	resultsBefore := ids(engine.Results())

	engine.ToggleSkill("React")
	engine.ToggleSkill("React")

	after := engine.State()
	assert.True(t, before.Equal(after))
	assert.Equal(t, []string{"SQL", "React"}, after.Skills)
	assert.Equal(t, resultsBefore, ids(engine.Results()))
	assert.Equal(t, "skills=SQL%2CReact", engine.QueryString())
	assert.True(t, discovery.ParseQuery(engine.QueryString()).Equal(before))
}

func TestEngine_StatusAndCategoryCommute(t *testing.T) {
	catalog := newSeedCatalog(t)

	a := discovery.NewEngine(catalog, nil, nil)
	a.SetStatus("open")
	a.SetCategory("Web Development")

	b := discovery.NewEngine(catalog, nil, nil)
	b.SetCategory("Web Development")
	b.SetStatus("open")

	assert.Equal(t, a.Results(), b.Results())
	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, []string{"1", "4", "5"}, ids(a.Results()))
}

func TestEngine_RoundTripForReachableStates(t *testing.T) {
	catalog := newSeedCatalog(t)
	engine := discovery.NewEngine(catalog, nil, nil)

	steps := []func(){
		func() { engine.SetText("platform") },
		func() { engine.ToggleSkill("React") },
		func() { engine.SetStatus("in-progress") },
		func() { engine.SetCategory("E-commerce") },
		func() { engine.ToggleSkill("Node.js") },
		func() { engine.SetText("  spaced  query & more  ") },
		func() { engine.ToggleSkill("React") },
		func() { engine.SetStatus("bogus") },
		func() { engine.SetCategory("Nowhere") },
		func() { engine.ToggleSkill("Node.js") },
		func() { engine.ClearAll() },
	}

	check := func() {
		state := engine.State()
		assert.Equal(t, state, discovery.Decode(discovery.Encode(state)))
		assert.Equal(t, state, discovery.ParseQuery(discovery.EncodeQuery(state)))

		restored := discovery.NewEngine(catalog, engine.Query(), nil)
		assert.Equal(t, state, restored.State())
		assert.Equal(t, engine.Results(), restored.Results())
	}

	check()
	for _, step := range steps {
		step()
		check()
	}
}

func TestEngine_PermissiveSelectors(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), nil, nil)

	engine.SetStatus("archived")
	assert.Equal(t, discovery.SelectorAll, engine.State().Status)

	engine.SetCategory("Underwater Basket Weaving")
	assert.Equal(t, discovery.SelectorAll, engine.State().Category)
	assert.Len(t, engine.Results(), 5)

	// категория есть в справочнике, но ни у одного проекта
	engine.SetCategory("Gaming")
	assert.Equal(t, "Gaming", engine.State().Category)
	assert.Empty(t, engine.Results())
}

func TestEngine_IgnoresUnrepresentableSkills(t *testing.T) {
	listener := &recordingListener{}
	engine := discovery.NewEngine(newSeedCatalog(t), nil, listener)

	engine.ToggleSkill("   ")
	engine.ToggleSkill("React,Node.js")
	assert.Nil(t, engine.State().Skills)
	assert.Len(t, listener.snapshots, 2)

	engine.ToggleSkill("  React ")
	assert.Equal(t, []string{"React"}, engine.State().Skills)
}

func TestEngine_UnknownSkillYieldsEmptyResult(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), nil, nil)
	engine.ToggleSkill("COBOL")
	assert.Empty(t, engine.Results())
	assert.Equal(t, "skills=COBOL", engine.QueryString())
}

func TestEngine_InitialQueryIsNormalized(t *testing.T) {
	initial := discovery.ParseValues("/projects?status=unknown&category=Nope&skills=,React,React,&search=app")
	engine := discovery.NewEngine(newSeedCatalog(t), initial, nil)

	assert.Equal(t, discovery.FilterState{
		Search:   "app",
		Status:   discovery.SelectorAll,
		Category: discovery.SelectorAll,
		Skills:   []string{"React"},
	}, engine.State())
	assert.Equal(t, "search=app&skills=React", engine.QueryString())
}

func TestEngine_ResultsAreCopies(t *testing.T) {
	engine := discovery.NewEngine(newSeedCatalog(t), nil, nil)
	results := engine.Results()
	results[0].Title = "changed"
	assert.NotEqual(t, "changed", engine.Results()[0].Title)
}

func TestEngine_ResultSlicesDoNotAliasCatalog(t *testing.T) {
	catalog := newSeedCatalog(t)
	engine := discovery.NewEngine(catalog, nil, nil)

	results := engine.Results()
	results[0].Skills[0] = "COBOL"
	engine.Snapshot().Results[0].Categories[0] = "Mutated"

	p, ok := catalog.Project("1")
	require.True(t, ok)
	assert.Equal(t, "React", p.Skills[0])
	assert.NotEqual(t, "Mutated", p.Categories[0])

	engine.ToggleSkill("COBOL")
	assert.Empty(t, engine.Results())
}
