package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/skuledger/skuledger/internal/config"
)

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

var _ = Describe("flags", func() {
	var (
		cfg   *config.Configuration
		flags *pflag.FlagSet
	)

	BeforeEach(func() {
		cfg = config.NewConfigurationWithOptionsAndDefaults()
		flags = pflag.NewFlagSet("test", pflag.ContinueOnError)
		registerFlags(flags, cfg)
	})

	It("takes unset flags from the environment", func() {
		setenv("SKULEDGER_HTTP_PORT", "9090")
		setenv("SKULEDGER_LOW_STOCK_THRESHOLD", "7")

		Expect(flags.Parse(nil)).To(Succeed())
		Expect(syncEnv(flags)).To(Succeed())

		Expect(cfg.Server.HTTPPort).To(Equal(9090))
		Expect(cfg.Ingest.LowStockThreshold).To(Equal(7))
		Expect(cfg.Query.DefaultPageSize).To(Equal(100))
	})

	It("prefers the command line over the environment", func() {
		setenv("SKULEDGER_HTTP_PORT", "9090")

		Expect(flags.Parse([]string{"--http-port", "7000"})).To(Succeed())
		Expect(syncEnv(flags)).To(Succeed())

		Expect(cfg.Server.HTTPPort).To(Equal(7000))
	})

	It("names the variable when its value is invalid", func() {
		setenv("SKULEDGER_MAX_FINISHED_JOBS", "many")

		Expect(flags.Parse(nil)).To(Succeed())
		err := syncEnv(flags)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("SKULEDGER_MAX_FINISHED_JOBS"))
	})
})

var _ = Describe("loadExports", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("uses --date for a single file", func() {
		path := writeFile(dir, "inventory.csv", "Master SKU,Quantity\nA,1\n")

		exports, err := loadExports([]string{path}, "2025-08-09")
		Expect(err).NotTo(HaveOccurred())
		Expect(exports).To(HaveLen(1))
		Expect(exports[0].Date).To(Equal("2025-08-09"))
		Expect(exports[0].Rows).To(HaveLen(1))
	})

	It("rejects --date with several files", func() {
		_, err := loadExports([]string{"a.csv", "b.csv"}, "2025-08-09")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a malformed --date", func() {
		path := writeFile(dir, "inventory.csv", "Master SKU,Quantity\nA,1\n")
		_, err := loadExports([]string{path}, "08/09/2025")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("root command", func() {
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append(args, "--log-level", "error"))
		err := root.Execute()
		return out.String(), err
	}

	It("ingests exports in date order", func() {
		dir := GinkgoT().TempDir()
		second := writeFile(dir, "export-2025-08-09.csv", "Master SKU,Title,Quantity,Estimated Cost\nA,Alpha,15,2.00\n")
		first := writeFile(dir, "export-2025-08-08.csv", "Master SKU,Title,Quantity,Estimated Cost\nA,Alpha,10,2.00\n")

		out, err := run("ingest", second, first)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("2025-08-08"))
		Expect(out).To(ContainSubstring("vs 2025-08-08"))
		Expect(out).To(ContainSubstring("view as of 2025-08-09 (1 rows)"))
	})

	It("persists to the data folder between commands", func() {
		dir := GinkgoT().TempDir()
		path := writeFile(dir, "export-2025-08-08.csv", "Master SKU,Quantity\nA,3\nB,0\n")

		_, err := run("ingest", path, "--data-folder", dir)
		Expect(err).NotTo(HaveOccurred())

		out, err := run("metrics", "2025-08-08", "--data-folder", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("products 2"))
		Expect(out).To(ContainSubstring("out 1"))
	})

	It("reports a date without metrics", func() {
		_, err := run("metrics", "2025-01-01")
		Expect(err).To(HaveOccurred())
	})

	It("refreshes nothing on an empty database", func() {
		out, err := run("refresh")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("no snapshot ingested yet"))
	})

	It("rejects an unknown driver", func() {
		_, err := run("migrate", "--db-driver", "postgres")
		Expect(err).To(MatchError(ContainSubstring("unsupported storage driver")))
	})
})
