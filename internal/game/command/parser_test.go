package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	_, ok := DefaultVocabulary().Parse("   ")
	assert.False(t, ok)
}

func TestParse_Unknown(t *testing.T) {
	_, ok := DefaultVocabulary().Parse("dance wildly")
	assert.False(t, ok)
}

func TestParse_SingleWord(t *testing.T) {
	res, ok := DefaultVocabulary().Parse("INVENTORY")
	require.True(t, ok)
	assert.Equal(t, GroupInventory, res.Command.Group)
	assert.Equal(t, "inventory", res.Phrase)
	assert.Equal(t, "", res.Target)
}

func TestParse_WithTarget(t *testing.T) {
	res, ok := DefaultVocabulary().Parse("  take   Library  Key ")
	require.True(t, ok)
	assert.Equal(t, GroupTake, res.Command.Group)
	assert.Equal(t, "library key", res.Target)
}

func TestParse_PrefersLongestPrefix(t *testing.T) {
	v := DefaultVocabulary()

	res, ok := v.Parse("look at lantern")
	require.True(t, ok)
	assert.Equal(t, GroupExamine, res.Command.Group)
	assert.Equal(t, "look at", res.Phrase)
	assert.Equal(t, "lantern", res.Target)

	res, ok = v.Parse("look")
	require.True(t, ok)
	assert.Equal(t, GroupLoc, res.Command.Group)

	res, ok = v.Parse("talk to priest")
	require.True(t, ok)
	assert.Equal(t, GroupTalk, res.Command.Group)
	assert.Equal(t, "priest", res.Target)
}

func TestParse_LongerPhraseAfterGap(t *testing.T) {
	v, err := NewVocabulary([]Command{
		{Name: "go", Phrases: []string{"go", "go to the"}},
	})
	require.NoError(t, err)
	res, ok := v.Parse("go to the north")
	require.True(t, ok)
	assert.Equal(t, "go to the", res.Phrase)
	assert.Equal(t, "north", res.Target)
}

func TestPropertyParse_TargetIsSuffix(t *testing.T) {
	v := DefaultVocabulary()
	phrases := v.Phrases()
	rapid.Check(t, func(t *rapid.T) {
		phrase := rapid.SampledFrom(phrases).Draw(t, "phrase")
		target := rapid.StringMatching(`(xq[a-z]{0,5})( xq[a-z]{0,5}){0,2}`).Draw(t, "target")
		res, ok := v.Parse(phrase + " " + target)
		if !ok {
			t.Fatalf("phrase %q did not match", phrase)
		}
		if res.Target != target {
			t.Fatalf("target = %q, want %q", res.Target, target)
		}
		if !strings.HasPrefix(phrase+" ", res.Phrase+" ") {
			t.Fatalf("matched %q, not a prefix of %q", res.Phrase, phrase)
		}
	})
}
