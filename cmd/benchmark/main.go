// Benchmark client for the text-to-shader API. Posts sample prompts to a
// running instance and reports wall time and which shaders came back.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	VertexShader   string `json:"vertexShader"`
	FragmentShader string `json:"fragmentShader"`
	ShaderCode     string `json:"shaderCode"`
}

type result struct {
	Sample   string `json:"sample"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Error    string `json:"error,omitempty"`

	shaderCode string
}

func main() {
	url := flag.String("url", "http://localhost:8080", "API base URL")
	apiKey := flag.String("api-key", "", "API key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show generated shaders per sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	if *quality {
		runQualityMode(client, baseURL, *apiKey)
		return
	}

	fmt.Printf("Benchmarking against %s (%d runs per sample", baseURL, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, *apiKey, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.WallMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, *apiKey, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.WallMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func benchmark(client *http.Client, baseURL, apiKey string, sample Sample, run int) result {
	fail := func(err string) result {
		return result{Sample: sample.Name, Chars: len(sample.Prompt), Run: run, Error: err}
	}

	payload, _ := json.Marshal(generateRequest{Prompt: sample.Prompt})

	req, err := http.NewRequest("POST", baseURL+"/api/generate-shader", strings.NewReader(string(payload)))
	if err != nil {
		return fail(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	start := time.Now()
	resp, err := client.Do(req)
	wallMs := time.Since(start).Milliseconds()

	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fail(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fail(err.Error())
	}

	return result{
		Sample:     sample.Name,
		Chars:      len(sample.Prompt),
		Run:        run,
		WallMs:     wallMs,
		OutChars:   len(gr.ShaderCode),
		shaderCode: gr.ShaderCode,
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Wall (ms) | Out Chars |")
	fmt.Println("|--------|-------|-----|-----------|-----------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %9s | %9s |\n",
				r.Sample, r.Chars, r.Run, "FAIL", "-")
			continue
		}
		fmt.Printf("| %-6s | %5d | %d | %9d | %9d |\n",
			r.Sample, r.Chars, r.Run, r.WallMs, r.OutChars)
	}
}

func runQualityMode(client *http.Client, baseURL, apiKey string) {
	fmt.Printf("Quality test against %s\n", baseURL)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range Samples {
		fmt.Printf("\n--- %d/%d: %s ---\n", i+1, len(Samples), sample.Name)
		fmt.Printf("PROMPT: %s\n", sample.Prompt)

		r := benchmark(client, baseURL, apiKey, sample, 1)
		if r.Error != "" {
			fmt.Printf("ERR: %s\n", r.Error)
			failures++
			continue
		}

		fmt.Printf("SHADERS:\n%s\n", r.shaderCode)
		fmt.Printf("     [%dms, %d chars]\n", r.WallMs, r.OutChars)
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(Samples)-failures, len(Samples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalWall int64
	minWall := ok[0].WallMs
	maxWall := ok[0].WallMs
	minSample := ok[0].Sample
	maxSample := ok[0].Sample

	for _, r := range ok {
		totalWall += r.WallMs
		if r.WallMs < minWall {
			minWall = r.WallMs
			minSample = r.Sample
		}
		if r.WallMs > maxWall {
			maxWall = r.WallMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg wall: %dms\n", totalWall/int64(len(ok)))
	fmt.Printf("- Min wall: %dms (%s)\n", minWall, minSample)
	fmt.Printf("- Max wall: %dms (%s)\n", maxWall, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
