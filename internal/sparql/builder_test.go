package sparql

import (
	"fmt"
	"strings"
	"testing"
)

func TestLabelQuery(t *testing.T) {
	b := NewBuilder("en", "https://en.wikipedia.org/")
	q := b.LabelQuery("Q42")
	if !strings.Contains(q, "wd:Q42 rdfs:label") {
		t.Errorf("label query should select the label of wd:Q42:\n%s", q)
	}
	if !strings.Contains(q, `LANG(?label) = "en"`) {
		t.Errorf("label query should filter by language:\n%s", q)
	}
}

func TestDetailQuery(t *testing.T) {
	b := NewBuilder("en", "https://en.wikipedia.org/")
	q := b.DetailQuery("Q42")
	for _, want := range []string{
		"wdt:P31 wd:Q5",  // restricted to humans
		"wdt:P569",       // birth date required
		"wdt:P570",       // death date optional
		"wdt:P21",        // gender optional
		"schema:isPartOf <https://en.wikipedia.org/>",
		"YEAR(?death) - YEAR(?birth)",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("detail query missing %q:\n%s", want, q)
		}
	}
}

func TestPersonCheckQuery_batchesAllIDs(t *testing.T) {
	b := NewBuilder("en", "https://en.wikipedia.org/")
	q := b.PersonCheckQuery([]string{"Q1", "Q2", "Q3"})
	if !strings.Contains(q, "VALUES ?person { wd:Q1 wd:Q2 wd:Q3 }") {
		t.Errorf("person check should batch all ids in one VALUES clause:\n%s", q)
	}
	if !strings.Contains(q, "wdt:P569") {
		t.Errorf("person check should require a birth-date fact:\n%s", q)
	}
}

func TestMembershipQuery(t *testing.T) {
	b := NewBuilder("en", "https://en.wikipedia.org/")
	q := b.MembershipQuery([]string{"Q10", "Q20"}, RelationEnsemble)
	if !strings.Contains(q, "VALUES ?group { wd:Q10 wd:Q20 }") {
		t.Errorf("membership query should batch group ids:\n%s", q)
	}
	if !strings.Contains(q, "wdt:P527") {
		t.Errorf("ensemble tier should use the has-part relation:\n%s", q)
	}
	if !strings.Contains(q, "?member wdt:P569") {
		t.Errorf("members must themselves have a birth-date fact:\n%s", q)
	}
	if !strings.Contains(q, "SELECT DISTINCT") {
		t.Errorf("membership query should deduplicate server-side:\n%s", q)
	}
	if !strings.Contains(q, fmt.Sprintf("LIMIT %d", MemberLimit)) {
		t.Errorf("membership query should be capped at %d rows:\n%s", MemberLimit, q)
	}

	cast := b.MembershipQuery([]string{"Q10"}, RelationCast)
	if !strings.Contains(cast, "wdt:P161") {
		t.Errorf("narrative tier should use the cast-member relation:\n%s", cast)
	}
}

func TestBuilder_opaquePassthrough(t *testing.T) {
	// Malformed identifiers are the caller's responsibility; the builder
	// must not reject or rewrite them.
	b := NewBuilder("en", "https://en.wikipedia.org/")
	q := b.LabelQuery("not-a-qid")
	if !strings.Contains(q, "wd:not-a-qid") {
		t.Errorf("builder should pass identifiers through unchanged:\n%s", q)
	}
}
