package novelwriting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullPipelineIntegration runs the manager with the real kagome
// tokenizer and a SQLite thesaurus.
func TestFullPipelineIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	var initErrors []error
	m := NewManager(
		WithDictionaryPath(buildTestStore(t)),
		WithSystemDictionary(DictIPA),
		WithInitFailureHandler(func(err error) { initErrors = append(initErrors, err) }),
	)
	defer m.Close()

	// requests made before loading finishes never block
	assert.Equal(t, StatusPlaceholder, m.Digest("猫が好き").Text)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, m.Init(ctx))
	require.Empty(t, initErrors)

	t.Run("Hover", func(t *testing.T) {
		hover, err := m.Hover("猫が好き", 0)
		require.NoError(t, err)
		require.NotNil(t, hover)
		assert.Equal(t, "猫", hover.BaseForm)
		assert.Equal(t, Span{Start: 0, End: 1}, hover.Span)

		// inflected verbs resolve to their dictionary form
		hover, err = m.Hover("彼は語った", 2)
		require.NoError(t, err)
		require.NotNil(t, hover)
		assert.Equal(t, "語る", hover.BaseForm)
	})

	t.Run("Complete", func(t *testing.T) {
		items, err := m.Complete(ctx, "猫が好き", 0)
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "猫 (ねこ)", items[0].Label)
		assert.Equal(t, "猫ちゃん", items[3].InsertText)
		for _, item := range items {
			assert.Equal(t, Span{Start: 0, End: 1}, item.Range)
		}

		items, err = m.Complete(ctx, "話す", 0)
		require.NoError(t, err)
		labels := make([]string, 0, len(items))
		for _, item := range items {
			labels = append(labels, item.Label)
		}
		assert.Equal(t, []string{"話す (はなす)", "しゃべる (しゃべる)", "語る (かたる)"}, labels)
	})

	t.Run("Digest", func(t *testing.T) {
		text := "吾輩は猫である。名前はまだ無い。"
		digest, err := m.Stats(text)
		require.NoError(t, err)
		require.NotNil(t, digest)
		assert.Equal(t, 16, digest.Length)
		assert.Greater(t, digest.Ratio(Noun), 0.0)
		assert.InDelta(t, 1.0, ratioSum(*digest), 1e-9)

		status := m.Digest(text)
		assert.True(t, status.Ready)
		assert.Contains(t, status.Text, "文字数: 16, 異なり形態素率: ")
		assert.Contains(t, status.Tooltip, "名詞率: ")
	})
}
