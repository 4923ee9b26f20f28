// seed deja el archivo de datos de la demo en su estado inicial:
// reservas, usuarios y hoteles de ejemplo, sin sesión activa.
//
// Uso: go run ./cmd/seed [ruta/stayhub.json]
// Por defecto usa STORE_PATH (o ./data/stayhub.json).
package main

import (
	"fmt"
	"os"

	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/config"
	"github.com/skarki/stayhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	store := localstore.New(path, log)

	if err := localstore.Seed(store); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar datos: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Datos de ejemplo escritos en %s\n", path)
}
