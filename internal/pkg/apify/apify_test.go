package apify_test

import (
	"context"

	"settermind/internal/pkg/apify"
	"settermind/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var client *apify.Client
	ctx := context.Background()

	BeforeEach(func() {
		testhelpers.Activate()

		client = apify.New("test-apify-token")
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	Describe("FetchPostDetails", func() {
		payload := `[
			{
				"url": "https://www.instagram.com/p/C6_s-jZPY-C/",
				"caption": "Deja de entrenar sin rumbo.",
				"likesCount": 843,
				"commentsCount": 57,
				"ownerUsername": "coach.fit",
				"ownerBiography": "Entrenador online para profesionales ocupados"
			}
		]`

		It("returns the post metadata and owner biography", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-scraper/run-sync-get-dataset-items").
				Reply(201).
				BodyString(payload)

			details, err := client.FetchPostDetails(ctx, "https://www.instagram.com/p/C6_s-jZPY-C/")
			Expect(err).NotTo(HaveOccurred())
			Expect(testhelpers.IsDone()).To(BeTrue())

			Expect(details.Caption).To(Equal("Deja de entrenar sin rumbo."))
			Expect(details.OwnerUsername).To(Equal("coach.fit"))
			Expect(details.LikesCount).To(Equal(843))
			Expect(details.CommentsCount).To(Equal(57))
			Expect(details.OwnerBiography).To(Equal("Entrenador online para profesionales ocupados"))
		})

		It("fills placeholder caption and username when the item omits them", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-scraper/run-sync-get-dataset-items").
				Reply(201).
				BodyString(`[{"url": "https://www.instagram.com/p/X/"}]`)

			details, err := client.FetchPostDetails(ctx, "https://www.instagram.com/p/X/")
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Caption).To(Equal("Sin descripción."))
			Expect(details.OwnerUsername).To(Equal("N/A"))
		})

		It("returns ErrNoItems for an empty dataset", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-scraper/run-sync-get-dataset-items").
				Reply(201).
				BodyString(`[]`)

			_, err := client.FetchPostDetails(ctx, "https://www.instagram.com/p/X/")
			Expect(err).To(MatchError(apify.ErrNoItems))
		})

		It("returns an error on a provider failure", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-scraper/run-sync-get-dataset-items").
				Reply(402).
				BodyString(`{"error":{"type":"insufficient-credit"}}`)

			_, err := client.FetchPostDetails(ctx, "https://www.instagram.com/p/X/")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("apify error 402"))
		})
	})

	Describe("FindPostsByHashtag", func() {
		payload := `[
			{"url": "https://www.instagram.com/p/AAA111/", "caption": "Meal prep vegano"},
			{"caption": "item sin url"},
			{"url": "https://www.instagram.com/p/BBB222/"}
		]`

		It("returns posts and skips items without a url", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-hashtag-scraper/run-sync-get-dataset-items").
				Reply(201).
				BodyString(payload)

			posts, err := client.FindPostsByHashtag(ctx, "#veganmealprep")
			Expect(err).NotTo(HaveOccurred())

			Expect(posts).To(HaveLen(2))
			Expect(posts[0].URL).To(Equal("https://www.instagram.com/p/AAA111/"))
			Expect(posts[0].Caption).To(Equal("Meal prep vegano"))
			Expect(posts[1].Caption).To(Equal("Sin descripción."))
		})

		It("propagates provider errors", func() {
			testhelpers.New("https://api.apify.com").
				Post("/v2/acts/apify~instagram-hashtag-scraper/run-sync-get-dataset-items").
				Reply(500).
				BodyString(`boom`)

			_, err := client.FindPostsByHashtag(ctx, "fitness")
			Expect(err).To(HaveOccurred())
		})
	})
})
