package input_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/marcoimmel/IteratorTools/internal/errorlist"
	"github.com/marcoimmel/IteratorTools/internal/input"
	"github.com/marcoimmel/IteratorTools/internal/lists"
)

func (suite *Suite) TestDecode() {
	r := suite.Require()
	rawYaml := strings.TrimSpace(dedent.Dedent(`
	sequences:
	- name: digits
	  values: [1, 2, 3]
	- name: letters
	  values: [a, b]
	- name: naturals
	  count: {start: 5}
	- count: 7
	`))
	sequences, err := input.Decode(strings.NewReader(rawYaml))
	r.NoError(err)
	r.Len(sequences, 4)
	r.Equal([]string{"1", "2", "3"}, sequences[0].Values)
	r.Equal("letters", sequences[1].Name)
	r.Equal(&input.Progression{Start: 5, Step: 1}, sequences[2].Count)
	r.Equal(&input.Progression{Start: 7, Step: 1}, sequences[3].Count)
}

func (suite *Suite) TestDecodeUnknownKey() {
	r := suite.Require()
	_, err := input.Decode(strings.NewReader("sequences: [{name: a, vals: [1]}]"))
	r.ErrorContains(err, "vals")
}

func (suite *Suite) TestDecodeEmpty() {
	r := suite.Require()
	sequences, err := input.Decode(strings.NewReader(""))
	r.NoError(err)
	r.Empty(sequences)
}

func (suite *Suite) TestLoadSpecs() {
	r := suite.Require()
	sequences, err := input.Load([]string{"x=1,1,2", "3,tmp"}, "", input.Options{
		Distinct: true,
		Exclude:  lists.Blacklist{"tmp"},
	})
	r.NoError(err)
	r.Len(sequences, 2)
	r.Equal("x", sequences[0].Name)
	r.Equal([]string{"1", "2"}, sequences[0].Values)
	r.Equal("seq2", sequences[1].Name)
	r.Equal([]string{"3"}, sequences[1].Values)
}

func (suite *Suite) TestLoadFile() {
	r := suite.Require()
	path := filepath.Join(suite.T().TempDir(), "sequences.yml")
	err := os.WriteFile(path, []byte("sequences: [{values: [a]}, {values: [b, c]}]\n"), 0o600)
	r.NoError(err)

	sequences, err := input.Load(nil, path, input.Options{})
	r.NoError(err)
	r.Len(sequences, 2)
	r.Equal("seq1", sequences[0].Name)
	r.Equal([]string{"b", "c"}, sequences[1].Values)
}

func (suite *Suite) TestLoadErrors() {
	r := suite.Require()
	_, err := input.Load([]string{"count:x", "count:1:y"}, "", input.Options{})
	r.Error(err)
	var list *errorlist.List
	r.ErrorAs(err, &list)
	r.Equal(2, list.Len())

	_, err = input.Load([]string{"n=count:1:0"}, "", input.Options{})
	r.ErrorAs(err, &list)

	_, err = input.Load(nil, "", input.Options{Exclude: lists.Blacklist{"\\"}})
	r.ErrorContains(err, "exclude")
}
