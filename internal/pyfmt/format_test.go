package pyfmt_test

import "github.com/marcoimmel/IteratorTools/internal/pyfmt"

func (suite *Suite) TestParseLiteralOnly() {
	r := suite.Require()
	f, err := pyfmt.Parse("toto")
	r.Nil(err)
	r.True(f.IsStatic())
	r.Equal([]any{"toto"}, f.Sections)
	r.Equal("toto", f.Format(nil))
}

func (suite *Suite) TestParseMethod() {
	r := suite.Require()
	f, err := pyfmt.Parse("{letters.upper()}")
	r.Nil(err)
	r.Equal(1, len(f.Fields))
	r.Equal(1, len(f.Sections))
	r.Equal("letters", f.Fields[0].Name)
	r.Equal("upper", f.Fields[0].Method)
}

func (suite *Suite) TestParseCombination() {
	r := suite.Require()
	f, err := pyfmt.Parse("ext_{0}-{1}")
	r.Nil(err)
	r.Equal(4, len(f.Sections))
	r.Equal("ext_", f.Sections[0])
	r.Equal("-", f.Sections[2])
	r.Equal("0", f.Fields[0].Name)
	r.Equal("1", f.Fields[1].Name)
}

func (suite *Suite) TestParseEscaped() {
	r := suite.Require()
	f, err := pyfmt.Parse("literal {{toto}} pouet")
	r.Nil(err)
	r.True(f.IsStatic())
	r.Equal("literal {toto} pouet", f.Format(map[string]string{}))
}

func (suite *Suite) TestParseSpec() {
	r := suite.Require()
	f, err := pyfmt.Parse("{0:>30}")
	r.Nil(err)
	r.Equal(&pyfmt.Field{Name: "0", Align: '>', Width: 30}, f.Fields[0])

	f, err = pyfmt.Parse("{n.lower():4}")
	r.Nil(err)
	r.Equal(&pyfmt.Field{Name: "n", Method: "lower", Align: '<', Width: 4}, f.Fields[0])
}

func (suite *Suite) TestParseErrors() {
	r := suite.Require()
	for _, s := range []string{
		"literal{unterminated_field",
		"single } brace",
		"{}",
		"{0.reverse()}",
		"{upper()}",
		"{0:>x}",
	} {
		_, err := pyfmt.Parse(s)
		r.Error(err, s)
	}
}

func (suite *Suite) TestFormat() {
	r := suite.Require()
	f, err := pyfmt.Parse("{0}_{letters.upper()}|{0:>3}|{letters:^5}|{letters.title()}")
	r.Nil(err)

	s := f.Format(pyfmt.Values([]string{"digits", "letters"}, []string{"7", "ab"}))
	r.Equal("7_AB|  7| ab  |Ab", s)
}

func (suite *Suite) TestCheck() {
	r := suite.Require()
	f, err := pyfmt.Parse("{digits}{2}{zz}{1}")
	r.Nil(err)

	keys := pyfmt.Keys([]string{"digits", "letters"})
	r.ElementsMatch([]string{"digits", "letters", "0", "1"}, keys)
	r.EqualError(f.Check(keys...), "unknown field 2, zz")
	r.NoError(f.Check("digits", "1", "2", "zz"))
}
