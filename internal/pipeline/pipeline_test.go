package pipeline_test

import (
	"context"
	"errors"
	"time"

	"settermind/internal/config"
	"settermind/internal/db"
	"settermind/internal/models"
	"settermind/internal/pipeline"
	"settermind/internal/pkg/apify"
	"settermind/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

func mustFixture(name string) string {
	data, err := testhelpers.LoadFixture(name)
	Expect(err).NotTo(HaveOccurred())
	return string(data)
}

var _ = Describe("Pipeline", func() {
	var (
		dbConn           *gorm.DB
		owner            models.User
		posts            *testhelpers.FakePostFetcher
		cmts             *testhelpers.FakeCommentFetcher
		gen              *testhelpers.FakeGenerator
		analyzerResponse string
		strategyResponse string
	)
	ctx := context.Background()

	newPipeline := func() *pipeline.Pipeline {
		return pipeline.New(dbConn, posts, cmts, gen)
	}

	BeforeEach(func() {
		cfg, err := config.LoadConfig()
		Expect(err).NotTo(HaveOccurred())

		dbConn, err = db.InitDB(cfg.DatabaseURL)
		if err != nil {
			Skip("database not available: " + err.Error())
		}

		Expect(models.AutoMigrate(dbConn)).To(Succeed())
		testhelpers.CleanupDB(dbConn)

		owner = models.User{Username: "tester", Email: "tester@example.com", HashedPassword: "x"}
		Expect(dbConn.Create(&owner).Error).To(Succeed())

		posts = &testhelpers.FakePostFetcher{
			Details: &apify.PostDetails{
				Caption:        "Nuevo programa de 12 semanas",
				OwnerUsername:  "coach.fit",
				LikesCount:     10,
				CommentsCount:  3,
				OwnerBiography: "",
			},
		}
		cmts = &testhelpers.FakeCommentFetcher{
			Comments: []string{"Me interesa!", "😂😂😂", "Yo igual busco esto"},
		}
		analyzerResponse = mustFixture("leads_response.json")
		strategyResponse = mustFixture("strategy_response.json")

		// First response feeds the analyzer; the classifier never runs here
		// because the biography above is empty.
		gen = &testhelpers.FakeGenerator{Responses: []string{analyzerResponse}}
	})

	Describe("Analyze", func() {
		It("persists and returns the enriched result with the computed summary", func() {
			result, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "fitness coaching", "busy professionals")
			Expect(err).NotTo(HaveOccurred())

			summary := gjson.GetBytes(result, "summary").String()
			Expect(summary).To(Equal("Analizados 3 com., IA identificó 2 prospectos."))
			Expect(gjson.GetBytes(result, "leads").Array()).To(HaveLen(2))

			var stored []models.Analysis
			Expect(dbConn.Find(&stored).Error).To(Succeed())
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].PostURL).To(Equal("https://insta/p/1"))
			Expect(stored[0].OwnerID).To(Equal(owner.ID))
			Expect(gjson.GetBytes(stored[0].ResultData, "summary").String()).To(Equal(summary))
		})

		It("creates a distinct row per identical request", func() {
			pl := newPipeline()

			_, err := pl.Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).NotTo(HaveOccurred())

			gen.Responses = []string{analyzerResponse}
			_, err = pl.Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).NotTo(HaveOccurred())

			var count int64
			Expect(dbConn.Model(&models.Analysis{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(2)))
		})

		It("fails with post details unavailable before any model call", func() {
			posts.Details = nil
			posts.DetailsErr = errors.New("actor run failed")

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrPostDetailsUnavailable))
			Expect(err).To(MatchError(pipeline.ErrEmptyResult))
			Expect(gen.Prompts).To(BeEmpty())
			Expect(cmts.Calls).To(BeZero())
		})

		It("fails with no comments found without invoking the analyzer", func() {
			cmts.Comments = nil

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrNoComments))
			Expect(gen.Prompts).To(BeEmpty())
		})

		It("treats a comment-scrape failure like an empty page", func() {
			cmts.Err = errors.New("blocked")

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrNoComments))
		})

		It("fails with AI analysis failed when the model call errors", func() {
			gen.Err = errors.New("provider down")

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrAnalysisFailed))
			Expect(err).To(MatchError(pipeline.ErrUpstreamUnavailable))
		})

		It("rejects malformed model output and persists nothing", func() {
			gen.Responses = []string{"esto no es json"}

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrContractViolation))

			var count int64
			Expect(dbConn.Model(&models.Analysis{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("rejects contract-breaking scores and persists nothing", func() {
			gen.Responses = []string{`{"leads": [{"comment_text": "x", "pain_point_identified": "y", "potential_score": 12, "suggested_openers": ["a","b","c"]}]}`}

			_, err := newPipeline().Analyze(ctx, owner.ID, "https://insta/p/1", "n", "a")
			Expect(err).To(MatchError(pipeline.ErrContractViolation))
		})
	})

	Describe("Strategy", func() {
		BeforeEach(func() {
			gen.Responses = []string{strategyResponse}
		})

		It("persists and returns exactly eight keywords and hashtags", func() {
			result, err := newPipeline().Strategy(ctx, owner.ID, "vegan meal prep", "time-poor parents")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Keywords).To(HaveLen(8))
			Expect(result.Hashtags).To(HaveLen(8))

			var stored []models.Strategy
			Expect(dbConn.Find(&stored).Error).To(Succeed())
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].Niche).To(Equal("vegan meal prep"))
			Expect(stored[0].Avatar).To(Equal("time-poor parents"))
			Expect(stored[0].OwnerID).To(Equal(owner.ID))
		})

		It("fails when generation errors", func() {
			gen.Err = errors.New("provider down")

			_, err := newPipeline().Strategy(ctx, owner.ID, "n", "a")
			Expect(err).To(MatchError(pipeline.ErrStrategyFailed))
		})

		It("rejects a short keyword list", func() {
			gen.Responses = []string{`{"keywords": ["solo una"], "hashtags": ["#h1","#h2","#h3","#h4","#h5","#h6","#h7","#h8"]}`}

			_, err := newPipeline().Strategy(ctx, owner.ID, "n", "a")
			Expect(err).To(MatchError(pipeline.ErrContractViolation))
		})
	})

	Describe("PostDetails", func() {
		It("classifies the author biography when present", func() {
			posts.Details.OwnerBiography = "Entrenador online para profesionales"
			gen.Responses = []string{`{"niche": "fitness online", "avatar": "profesionales ocupados"}`}

			details, err := newPipeline().PostDetails(ctx, "https://insta/p/1")
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Post.Caption).To(Equal("Nuevo programa de 12 semanas"))
			Expect(details.Profile.Niche).To(Equal("fitness online"))
			Expect(gen.Prompts).To(HaveLen(1))
		})

		It("attaches the sentinel classification for an empty biography without a model call", func() {
			details, err := newPipeline().PostDetails(ctx, "https://insta/p/1")
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Profile.Niche).To(Equal("No se pudo determinar (sin biografía)."))
			Expect(gen.Prompts).To(BeEmpty())
		})
	})

	Describe("listing order", func() {
		It("returns analyses most recent first", func() {
			older := models.Analysis{PostURL: "https://insta/p/old", ResultData: []byte(`{"leads": [], "summary": "s"}`), OwnerID: owner.ID, CreatedAt: time.Now().Add(-time.Hour)}
			newer := models.Analysis{PostURL: "https://insta/p/new", ResultData: []byte(`{"leads": [], "summary": "s"}`), OwnerID: owner.ID, CreatedAt: time.Now()}
			Expect(dbConn.Create(&older).Error).To(Succeed())
			Expect(dbConn.Create(&newer).Error).To(Succeed())

			var listed []models.Analysis
			Expect(dbConn.Where("owner_id = ?", owner.ID).Order("created_at DESC").Find(&listed).Error).To(Succeed())
			Expect(listed).To(HaveLen(2))
			Expect(listed[0].PostURL).To(Equal("https://insta/p/new"))
			Expect(listed[1].PostURL).To(Equal("https://insta/p/old"))
		})
	})
})
