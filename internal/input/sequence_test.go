package input_test

import (
	"github.com/marcoimmel/IteratorTools/internal/input"
	"github.com/marcoimmel/IteratorTools/internal/lists"
	"github.com/marcoimmel/IteratorTools/seq"
)

func (suite *Suite) TestParseValues() {
	r := suite.Require()
	s, err := input.Parse("1,2,3")
	r.NoError(err)
	r.Equal("", s.Name)
	r.Equal([]string{"1", "2", "3"}, s.Values)
	r.False(s.Infinite())

	s, err = input.Parse("Letters=a,b")
	r.NoError(err)
	r.Equal("Letters", s.Name)
	r.Equal([]string{"a", "b"}, s.Values)
}

func (suite *Suite) TestParseEmpty() {
	r := suite.Require()
	s, err := input.Parse("empty=")
	r.NoError(err)
	r.Empty(s.Values)
	r.Empty(seq.Collect(s.Source().Cursor()))
}

func (suite *Suite) TestParseCount() {
	r := suite.Require()
	s, err := input.Parse("n=count:10")
	r.NoError(err)
	r.True(s.Infinite())
	r.Equal(&input.Progression{Start: 10, Step: 1}, s.Count)
	r.Equal([]string{"10", "11"}, seq.Take(s.Source().Cursor(), 2))

	s, err = input.Parse("count:0:-5")
	r.NoError(err)
	r.Equal([]int{0, -5, -10}, seq.Take(s.Ints().Cursor(), 3))

	_, err = input.Parse("count:zero")
	r.ErrorContains(err, "bad start")
	_, err = input.Parse("count:1:x")
	r.ErrorContains(err, "bad step")
}

func (suite *Suite) TestNormalize() {
	r := suite.Require()
	s := input.Sequence{Values: []string{"a"}}
	r.NoError(s.Normalize(2))
	r.Equal("seq3", s.Name)

	s = input.Sequence{Name: "Jours Fériés"}
	r.NoError(s.Normalize(0))
	r.Equal("jours-feries", s.Name)

	s = input.Sequence{Name: "n", Count: &input.Progression{Start: 1}}
	r.ErrorContains(s.Normalize(0), "step must not be zero")

	s = input.Sequence{Name: "n", Values: []string{"1"}, Count: &input.Progression{Step: 1}}
	r.ErrorContains(s.Normalize(0), "mutually exclusive")
}

func (suite *Suite) TestDistinct() {
	r := suite.Require()
	s := input.Sequence{Name: "s", Values: []string{"b", "a", "b", "c", "a"}}
	s.Distinct()
	r.Equal([]string{"b", "a", "c"}, s.Values)
}

func (suite *Suite) TestExclude() {
	r := suite.Require()
	s := input.Sequence{Name: "s", Values: []string{"keep", "tmp_1", "tmp_2"}}
	s.Exclude(lists.Blacklist{"tmp_*"})
	r.Equal([]string{"keep"}, s.Values)
}

func (suite *Suite) TestString() {
	r := suite.Require()
	r.Equal("s=a,b", input.Sequence{Name: "s", Values: []string{"a", "b"}}.String())
	r.Equal("n=count:1:2", input.Sequence{Name: "n", Count: &input.Progression{Start: 1, Step: 2}}.String())
}
