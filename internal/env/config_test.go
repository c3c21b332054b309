package env_test

import (
	"context"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/luma/seymour/internal/env"
)

var _ = Describe("env", func() {
	Describe("LoadConfig()", func() {
		AfterEach(func() {
			os.Unsetenv("SEYMOUR_PORT")
			os.Unsetenv("SEYMOUR_DEBUG_HTTP")
		})

		It("has defaults", func() {
			conf, err := env.LoadConfig(context.Background())
			Expect(err).To(Succeed())
			Expect(conf.Host).To(Equal("0.0.0.0"))
			Expect(conf.Port).To(Equal(7362))
			Expect(conf.Reuseport).To(BeTrue())
			Expect(conf.LogLevel).To(Equal("info"))
			Expect(conf.LogEncoding).To(Equal("json"))
		})

		It("reads the environment", func() {
			os.Setenv("SEYMOUR_PORT", "8000")
			os.Setenv("SEYMOUR_DEBUG_HTTP", "true")

			conf, err := env.LoadConfig(context.Background())
			Expect(err).To(Succeed())
			Expect(conf.Port).To(Equal(8000))
			Expect(conf.DebugHTTP).To(BeTrue())
		})
	})

	Describe("Validate()", func() {
		It("reports every problem", func() {
			conf := env.Config{Port: 0, LogLevel: "loud", LogEncoding: "xml"}
			Expect(multierr.Errors(conf.Validate())).To(HaveLen(3))
		})

		It("accepts a valid config", func() {
			conf := env.Config{Port: 7362, LogLevel: "debug", LogEncoding: "console"}
			Expect(conf.Validate()).To(Succeed())
		})
	})

	Describe("MakeLogger()", func() {
		It("builds a logger at the requested level", func() {
			log, err := env.MakeLogger("warn", "json")
			Expect(err).To(Succeed())
			Expect(log.Core().Enabled(zapcore.DebugLevel)).To(BeFalse())
		})

		It("rejects unknown levels", func() {
			_, err := env.MakeLogger("loud", "json")
			Expect(err).To(HaveOccurred())
		})
	})
})
