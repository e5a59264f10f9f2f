package pipeline_test

import (
	"fmt"

	"settermind/internal/pipeline"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const validLeads = `{
	"leads": [
		{
			"comment_text": "Me interesa!",
			"pain_point_identified": "Busca una solución y no sabe por dónde empezar",
			"potential_score": 8,
			"suggested_openers": ["Hola!", "Vi tu comentario", "Te cuento cómo ayudo"]
		},
		{
			"comment_text": "Yo igual busco esto",
			"pain_point_identified": "Necesidad explícita del producto",
			"potential_score": 9,
			"suggested_openers": ["Hola", "Qué buscas exactamente?", "Puedo ayudarte"]
		}
	]
}`

var _ = Describe("ValidateLeads", func() {
	It("accepts a contract-conforming payload", func() {
		Expect(pipeline.ValidateLeads([]byte(validLeads))).To(Succeed())
	})

	It("accepts an empty leads array", func() {
		Expect(pipeline.ValidateLeads([]byte(`{"leads": []}`))).To(Succeed())
	})

	DescribeTable("rejects contract violations",
		func(payload string) {
			err := pipeline.ValidateLeads([]byte(payload))
			Expect(err).To(MatchError(pipeline.ErrContractViolation))
		},
		Entry("not JSON", `no json`),
		Entry("missing leads key", `{"prospects": []}`),
		Entry("leads not an array", `{"leads": {"a": 1}}`),
		Entry("missing comment_text",
			`{"leads": [{"pain_point_identified": "x", "potential_score": 5, "suggested_openers": ["a","b","c"]}]}`),
		Entry("score below range",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 0, "suggested_openers": ["a","b","c"]}]}`),
		Entry("score above range",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 11, "suggested_openers": ["a","b","c"]}]}`),
		Entry("fractional score",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 7.5, "suggested_openers": ["a","b","c"]}]}`),
		Entry("score as string",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": "8", "suggested_openers": ["a","b","c"]}]}`),
		Entry("two openers",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 5, "suggested_openers": ["a","b"]}]}`),
		Entry("four openers",
			`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 5, "suggested_openers": ["a","b","c","d"]}]}`),
	)

	It("rejects more than seven leads", func() {
		lead := `{"comment_text": "x", "pain_point_identified": "y", "potential_score": 5, "suggested_openers": ["a","b","c"]}`
		payload := `{"leads": [` + lead
		for i := 0; i < 7; i++ {
			payload += "," + lead
		}
		payload += `]}`

		Expect(pipeline.ValidateLeads([]byte(payload))).To(MatchError(pipeline.ErrContractViolation))
	})
})

var _ = Describe("ValidateStrategy", func() {
	eight := func(prefix string) string {
		out := ""
		for i := 1; i <= 8; i++ {
			if i > 1 {
				out += ","
			}
			out += fmt.Sprintf("%q", fmt.Sprintf("%s %d", prefix, i))
		}
		return out
	}

	It("accepts exactly eight keywords and eight hashtags", func() {
		payload := `{"keywords": [` + eight("frase") + `], "hashtags": [` + eight("#tag") + `]}`
		Expect(pipeline.ValidateStrategy([]byte(payload))).To(Succeed())
	})

	DescribeTable("rejects contract violations",
		func(payload string) {
			err := pipeline.ValidateStrategy([]byte(payload))
			Expect(err).To(MatchError(pipeline.ErrContractViolation))
		},
		Entry("not JSON", `---`),
		Entry("missing hashtags", `{"keywords": ["a","b","c","d","e","f","g","h"]}`),
		Entry("seven keywords", `{"keywords": ["a","b","c","d","e","f","g"], "hashtags": ["a","b","c","d","e","f","g","h"]}`),
		Entry("nine hashtags", `{"keywords": ["a","b","c","d","e","f","g","h"], "hashtags": ["a","b","c","d","e","f","g","h","i"]}`),
		Entry("empty string entry", `{"keywords": ["a","b","c","d","e","f","g",""], "hashtags": ["a","b","c","d","e","f","g","h"]}`),
		Entry("numeric entry", `{"keywords": ["a","b","c","d","e","f","g",8], "hashtags": ["a","b","c","d","e","f","g","h"]}`),
	)
})
