package api_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/tanklab/internal/api"
	"github.com/xuri/excelize/v2"
)

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder, v any) {
	ExpectWithOffset(1, json.Unmarshal(rec.Body.Bytes(), v)).To(Succeed())
}

const referenceDesign = `{
	"shape": "cylinder", "volume": 1000, "base_cost": 20, "side_cost": 10,
	"base_density": 8000, "top_density": 7500,
	"thermal": {"ambient": 35, "initial": 5, "critical": 25, "horizon": 24, "k": 0.15}
}`

var _ = Describe("Router", func() {
	var router http.Handler

	BeforeEach(func() {
		h := &api.Handler{Now: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }}
		router = api.NewRouter(h, api.Options{Rate: 1000, Burst: 1000})
	})

	Describe("POST /api/geometry", func() {
		It("solves the reference cylinder", func() {
			rec := post(router, "/api/geometry", `{"shape":"cylinder","volume":1000,"base_cost":20,"side_cost":10}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.GeometryResponse
			decodeBody(rec, &resp)
			r := math.Cbrt(1000 * 10 / (2 * math.Pi * 20))
			Expect(resp.Optimal.Dimension).To(BeNumerically("~", r, 1e-9))
			Expect(resp.Optimal.MinimumCost).To(BeNumerically("~", 6974.684, 1e-2))
			Expect(resp.CostCurve.X).To(HaveLen(100))
			Expect(resp.CostCurve.Y).To(HaveLen(100))
		})

		It("accepts a regular prism", func() {
			rec := post(router, "/api/geometry", `{"shape":"prism","sides":4,"volume":1000,"base_cost":20,"side_cost":10}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.GeometryResponse
			decodeBody(rec, &resp)
			o := resp.Optimal
			Expect(o.Dimension * o.Dimension * o.Height).To(BeNumerically("~", 1000, 1e-9))
			Expect(o.DimensionLabel).To(Equal("side (L)"))
		})

		It("rejects fewer than three sides", func() {
			rec := post(router, "/api/geometry", `{"shape":"prism","sides":2,"volume":1000,"base_cost":20,"side_cost":10}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(rec.Body.String()).To(ContainSubstring("at least 3 sides"))
		})

		It("rejects inputs whose solution overflows", func() {
			rec := post(router, "/api/geometry", `{"shape":"cylinder","volume":1e200,"base_cost":1,"side_cost":1e200}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(rec.Body.String()).To(ContainSubstring("out of representable range"))
		})

		It("rejects an unknown shape", func() {
			rec := post(router, "/api/geometry", `{"shape":"sphere","volume":1}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed JSON", func() {
			rec := post(router, "/api/geometry", `{"shape":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("invalid request payload"))
		})
	})

	Describe("POST /api/mass", func() {
		It("returns mass, center of mass and profile", func() {
			rec := post(router, "/api/mass", `{"shape":"cylinder","volume":1000,"base_cost":20,"side_cost":10,"base_density":8000,"top_density":7500}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.MassResponse
			decodeBody(rec, &resp)
			Expect(resp.Mass.TotalMass).To(BeNumerically("~", 7.75e6, 1))
			Expect(resp.Mass.CenterOfMass).To(BeNumerically(">", 0))
			Expect(resp.Mass.CenterOfMass).To(BeNumerically("<", resp.Optimal.Height/2))
			Expect(resp.Density.Y).To(HaveLen(100))
			Expect(resp.Mass.Warnings).To(BeEmpty())
		})

		It("warns on an inverted gradient without failing", func() {
			rec := post(router, "/api/mass", `{"shape":"cylinder","volume":1000,"base_cost":20,"side_cost":10,"base_density":7000,"top_density":8000}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.MassResponse
			decodeBody(rec, &resp)
			Expect(resp.Mass.Warnings).To(HaveLen(1))
		})
	})

	Describe("POST /api/thermal", func() {
		It("reports sampled and exact crossings", func() {
			rec := post(router, "/api/thermal", `{"ambient":35,"initial":5,"critical":25,"horizon":24,"k":0.15}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp struct {
				Times           []float64 `json:"times"`
				Temps           []float64 `json:"temperatures"`
				TimeToThreshold *float64  `json:"time_to_threshold"`
				ExactCrossing   *float64  `json:"exact_crossing"`
				Status          string    `json:"status"`
			}
			decodeBody(rec, &resp)
			exact := -math.Log((25.0-35)/(5.0-35)) / 0.15
			Expect(resp.Temps).To(HaveLen(100))
			Expect(resp.ExactCrossing).NotTo(BeNil())
			Expect(*resp.ExactCrossing).To(BeNumerically("~", exact, 1e-9))
			Expect(resp.TimeToThreshold).NotTo(BeNil())
			Expect(*resp.TimeToThreshold).To(BeNumerically("~", exact, 24.0/99))
			Expect(resp.Status).To(Equal("CRITICAL"))
		})

		It("omits the crossing when the product stays safe", func() {
			rec := post(router, "/api/thermal", `{"ambient":20,"initial":5,"critical":25,"horizon":24,"k":0.15}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).NotTo(ContainSubstring("time_to_threshold"))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"SAFE"`))
		})

		It("rejects a zero horizon", func() {
			rec := post(router, "/api/thermal", `{"ambient":20,"initial":5,"critical":25,"horizon":0,"k":0.15}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("POST /api/design", func() {
		It("evaluates every panel", func() {
			rec := post(router, "/api/design", referenceDesign)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.DesignResponse
			decodeBody(rec, &resp)
			Expect(resp.Optimal).NotTo(BeNil())
			Expect(resp.Mass).NotTo(BeNil())
			Expect(resp.Thermal).NotTo(BeNil())
			Expect(resp.Errors).To(BeNil())
		})

		It("keeps the thermal panel when the geometry is invalid", func() {
			body := strings.Replace(referenceDesign, `"cylinder"`, `"prism", "sides": 2`, 1)
			rec := post(router, "/api/design", body)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.DesignResponse
			decodeBody(rec, &resp)
			Expect(resp.Optimal).To(BeNil())
			Expect(resp.Mass).To(BeNil())
			Expect(resp.Thermal).NotTo(BeNil())
			Expect(resp.Errors).NotTo(BeNil())
			Expect(resp.Errors.Geometry).To(ContainSubstring("sides"))
		})
	})

	Describe("reports", func() {
		It("renders a PDF", func() {
			body := strings.Replace(referenceDesign, "{", `{"report": {"project": "Silo"},`, 1)
			rec := post(router, "/api/report/pdf", body)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/pdf"))
			Expect(bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-"))).To(BeTrue())
		})

		It("renders a workbook", func() {
			rec := post(router, "/api/report/xlsx", referenceDesign)
			Expect(rec.Code).To(Equal(http.StatusOK))

			f, err := excelize.OpenReader(rec.Body)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()
			Expect(f.GetSheetList()).To(ConsistOf("Summary", "CostCurve", "Density", "Thermal"))
		})
	})

	It("lists presets", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var presets []api.PresetInfo
		decodeBody(rec, &presets)
		Expect(presets).To(HaveLen(6))
	})

	It("lists presets with snake_case keys", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var raw []map[string]any
		decodeBody(rec, &raw)
		Expect(raw).NotTo(BeEmpty())
		cfg := raw[0]["config"].(map[string]any)
		Expect(cfg).To(HaveKey("geometry"))
		Expect(cfg["geometry"]).To(HaveKey("base_cost"))
		Expect(cfg["thermal"]).To(HaveKey("critical"))
		Expect(cfg).NotTo(HaveKey("Geometry"))
	})

	It("answers CORS preflight", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/geometry", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("rate limits per client", func() {
		limited := api.NewRouter(&api.Handler{}, api.Options{Rate: 0.001, Burst: 2})
		codes := []int{}
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/thermal", strings.NewReader(`{"ambient":35,"initial":5,"critical":25,"horizon":24,"k":0.15}`))
			req.RemoteAddr = "10.0.0.1:5555"
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}
		Expect(codes).To(Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}))
	})
})
