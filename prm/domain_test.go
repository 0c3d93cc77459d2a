// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import (
	"github.com/epsolid/hardening/mdl/sld"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Domain", func() {
	var (
		dom  *Domain
		a, b *sld.Hardening
	)

	BeforeEach(func() {
		dom = NewDomain()
		a = sld.NewHardening(1, 29000, 60, 290, 290)
		b = sld.NewHardening(2, 30000, 50, 0, 300)
		a.Log, b.Log = sld.Quiet, sld.Quiet
	})

	Describe("adding parameters", func() {
		It("initialises the value from the first component", func() {
			p, err := dom.New(7, a, "E")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Value()).To(Equal(29000.0))
			Expect(p.P.N).To(Equal("E"))
			Expect(dom.AddToParameter(7, b, "E")).To(Succeed())
			Expect(p.NumComponents()).To(Equal(2))
			Expect(p.Value()).To(Equal(29000.0))
		})

		It("creates missing parameters in AddToParameter", func() {
			Expect(dom.AddToParameter(3, b, "sigmaY")).To(Succeed())
			Expect(dom.Get(3)).NotTo(BeNil())
			Expect(dom.Get(3).Value()).To(Equal(50.0))
		})

		It("rejects duplicated tags", func() {
			_, err := dom.Add(1, 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = dom.Add(1, 0)
			Expect(err).To(HaveOccurred())
			_, err = dom.New(1, a, "E")
			Expect(err).To(HaveOccurred())
		})

		It("rejects unknown names and keeps the registry clean", func() {
			_, err := dom.New(4, a, "nu")
			Expect(err).To(HaveOccurred())
			Expect(dom.Get(4)).To(BeNil())
			Expect(dom.NumGrads()).To(Equal(0))
		})

		It("sorts tags and numbers gradients", func() {
			_, _ = dom.New(9, a, "Hkin")
			_, _ = dom.New(2, a, "E")
			_, _ = dom.New(5, a, "sigmaY")
			Expect(dom.Tags()).To(Equal([]int{2, 5, 9}))
			Expect(dom.GradIndex(5)).To(Equal(1))
			Expect(dom.GradIndex(9)).To(Equal(2))
			Expect(dom.GradIndex(1)).To(Equal(-1))
		})
	})

	Describe("updating parameters", func() {
		It("sets the value in every component and connected variable", func() {
			_, _ = dom.New(1, a, "sigmaY")
			Expect(dom.AddToParameter(1, b, "fy")).To(Succeed())
			var host float64
			dom.Get(1).Connect(&host)
			Expect(dom.Update(1, 75)).To(Succeed())
			Expect(a.SigY).To(Equal(75.0))
			Expect(b.SigY).To(Equal(75.0))
			Expect(dom.Get(1).Value()).To(Equal(75.0))
			Expect(host).To(Equal(75.0))
		})

		It("fails for missing parameters", func() {
			Expect(dom.Update(1, 75)).NotTo(Succeed())
			Expect(dom.Activate(1)).NotTo(Succeed())
		})
	})

	Describe("activating parameters", func() {
		It("selects one parameter at a time", func() {
			_, _ = dom.New(1, a, "E")
			_, _ = dom.New(2, a, "sigmaY")
			Expect(dom.AddToParameter(2, b, "sigmaY")).To(Succeed())

			Expect(dom.Activate(2)).To(Succeed())
			Expect(a.Active()).To(Equal(sld.PrmSigY))
			Expect(b.Active()).To(Equal(sld.PrmSigY))

			Expect(dom.Activate(1)).To(Succeed())
			Expect(a.Active()).To(Equal(sld.PrmE))
			Expect(b.Active()).To(Equal(sld.PrmNone))

			Expect(dom.Deactivate()).To(Succeed())
			Expect(a.Active()).To(Equal(sld.PrmNone))
		})
	})
})

var _ = Describe("Sweeper", func() {
	var (
		dom *Domain
		mat *sld.Hardening
	)

	BeforeEach(func() {
		dom = NewDomain()
		mat = sld.NewHardening(1, 29000, 60, 290, 290)
		mat.Log = sld.Quiet
		_, _ = dom.New(10, mat, "E")
		_, _ = dom.New(20, mat, "sigmaY")
	})

	It("returns zero sensitivities in the elastic range", func() {
		Expect(mat.SetTrialStrain(0.001)).To(Succeed())
		sw := &Sweeper{Domain: dom}
		sens, err := sw.Stress([]sld.Sensitive{mat})
		Expect(err).NotTo(HaveOccurred())
		Expect(sens).To(HaveLen(1))
		Expect(sens[0][0]).To(BeNumerically("~", 0.001, 1e-15))
		Expect(sens[0][1]).To(Equal(0.0))
		Expect(mat.Active()).To(Equal(sld.PrmNone))
	})

	It("matches the closed-form plastic sensitivities", func() {
		// first plastic step: σ = σy + H (ε E - σy)/(E + H) with H = Hiso + Hkin
		ε := 0.003
		Expect(mat.SetTrialStrain(ε)).To(Succeed())
		sw := &Sweeper{Domain: dom}
		sens, err := sw.Stress([]sld.Sensitive{mat})
		Expect(err).NotTo(HaveOccurred())
		E, σy, H := 29000.0, 60.0, 580.0
		dσdE := H * (ε*(E+H) - (ε*E - σy)) / ((E + H) * (E + H))
		dσdσy := 1 - H/(E+H)
		Expect(sens[0][0]).To(BeNumerically("~", dσdE, 1e-12))
		Expect(sens[0][1]).To(BeNumerically("~", dσdσy, 1e-12))
	})

	It("commits history sensitivities for every gradient", func() {
		Expect(mat.SetTrialStrain(0.003)).To(Succeed())
		calls := 0
		sw := &Sweeper{Domain: dom, StrainSens: func(tag, gradIndex int) float64 {
			calls++
			Expect(dom.GradIndex(tag)).To(Equal(gradIndex))
			return 0
		}}
		Expect(sw.Commit([]sld.Sensitive{mat})).To(Succeed())
		Expect(calls).To(Equal(2))
		E, σy, H := 29000.0, 60.0, 580.0
		dΔγdσy := -1 / (E + H)
		dΔγdE := (0.003*(E+H) - (0.003*E - σy)) / ((E + H) * (E + H))
		dεp, dα := mat.Sens(0)
		Expect(dεp).To(BeNumerically("~", dΔγdE, 1e-15))
		Expect(dα).To(BeNumerically("~", dΔγdE, 1e-15))
		dεp, dα = mat.Sens(1)
		Expect(dεp).To(BeNumerically("~", dΔγdσy, 1e-15))
		Expect(dα).To(BeNumerically("~", dΔγdσy, 1e-15))
		dεp, _ = mat.Sens(2)
		Expect(dεp).To(Equal(0.0))
		Expect(mat.Active()).To(Equal(sld.PrmNone))
	})
})
