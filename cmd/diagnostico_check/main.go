// diagnostico_check dispara um diagnóstico de teste contra uma instância
// rodando e confere se o HTML devolvido tem os blocos esperados.
//
//	go run ./cmd/diagnostico_check -url http://localhost:8001
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var samplePayload = map[string]string{
	"name":                "Joao Silva",
	"email":               "joao.silva@empresa.com",
	"phone":               "11987654321",
	"sector":              "Tecnologia/Software",
	"company_size":        "11-50 funcionários",
	"role":                "Sócio(a)/CEO/Fundador(a)",
	"main_pain":           "Processos manuais e repetitivos",
	"critical_area":       "Vendas/Marketing",
	"pain_quantification": "Sim, é um custo significativo (>R$ 10k/mês)",
	"digital_maturity":    "Temos sistemas centralizados (CRM/ERP)",
	"investment_capacity": "Entre R$ 30.000 e R$ 100.000",
	"urgency":             "Média - Próximos 6-12 meses",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8001", "endereço da API")
	saveHTML := flag.Bool("save", false, "grava o HTML devolvido em disco")
	flag.Parse()

	client := resty.New().SetBaseURL(strings.TrimRight(*baseURL, "/")).SetTimeout(2 * time.Minute)

	fmt.Printf("== health check: %s/health\n", *baseURL)
	healthResp, err := client.R().Get("/health")
	if err != nil {
		fmt.Printf("health check falhou: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   status=%d body=%s\n", healthResp.StatusCode(), healthResp.String())

	fmt.Printf("== diagnóstico: %s/api/v2/diagnostico\n", *baseURL)
	start := time.Now()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(samplePayload).
		Post("/api/v2/diagnostico")
	if err != nil {
		fmt.Printf("requisição falhou: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   status=%d content-type=%s duração=%s tamanho=%d bytes\n",
		resp.StatusCode(), resp.Header().Get("Content-Type"), time.Since(start).Round(time.Millisecond), len(resp.Body()))

	if resp.StatusCode() != 200 || !strings.Contains(resp.Header().Get("Content-Type"), "text/html") {
		fmt.Printf("resposta inesperada: %s\n", resp.String())
		os.Exit(1)
	}

	html := strings.ToLower(resp.String())
	checks := []struct {
		name   string
		marker string
	}{
		{"título", "diagnóstico"},
		{"nome do cliente", strings.ToLower(samplePayload["name"])},
		{"radar", "radar"},
		{"oportunidades", "oportunidade"},
		{"css embutido", "<style"},
	}

	failed := 0
	for _, check := range checks {
		ok := strings.Contains(html, check.marker)
		mark := "ok"
		if !ok {
			mark = "FALTANDO"
			failed++
		}
		fmt.Printf("   [%s] %s\n", mark, check.name)
	}

	if *saveHTML {
		filename := fmt.Sprintf("diagnostico_%s.html", time.Now().Format("20060102_150405"))
		if err := os.WriteFile(filename, resp.Body(), 0o644); err != nil {
			fmt.Printf("não consegui salvar o HTML: %v\n", err)
		} else {
			fmt.Printf("   HTML salvo em %s\n", filename)
		}
	}

	if failed > 0 {
		fmt.Printf("%d verificações falharam\n", failed)
		os.Exit(1)
	}
	fmt.Println("tudo certo")
}
