package morphology

import (
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

// NewKagome uses the IPA NEologd dictionary.
func NewKagome() (*Kagome, error) {
	return NewKagomeWithDict(ipaneologd.Dict())
}

// NewKagomeIPA uses the plain IPA dictionary, which loads much faster.
func NewKagomeIPA() (*Kagome, error) {
	return NewKagomeWithDict(ipa.Dict())
}

func NewKagomeWithDict(d *dict.Dict) (*Kagome, error) {
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
	}, nil
}

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Search)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		// 空白は区切りとして残す
		if len(features) > 1 && features[1] == "空白" {
			kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, " "))
			continue
		}
		kana := token.Surface
		if len(features) >= 8 && features[7] != "*" {
			kana = features[7]
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana))
	}
	return kagomeTokens
}
