package api

import (
	"math"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("writeJSON", func() {
	It("answers 500 when the payload cannot be encoded", func() {
		rec := httptest.NewRecorder()
		writeJSON(rec, http.StatusOK, map[string]float64{"cost": math.NaN()})
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(ContainSubstring("could not be encoded"))
	})

	It("writes the status and a JSON body", func() {
		rec := httptest.NewRecorder()
		writeJSON(rec, http.StatusCreated, map[string]int{"n": 1})
		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
		Expect(rec.Body.String()).To(Equal("{\"n\":1}\n"))
	})
})
