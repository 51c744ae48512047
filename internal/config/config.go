// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads bgvocab configuration from a YAML file and the
// environment.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Batch      BatchConfig      `yaml:"batch"`
	PDF        PDFConfig        `yaml:"pdf"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// VocabularyConfig holds vocabulary source settings.
type VocabularyConfig struct {
	Path            string `yaml:"path"              env:"BGVOCAB_VOCAB"             env-default:"vocab.txt"`
	Format          string `yaml:"format"            env:"BGVOCAB_FORMAT"            env-default:"auto"`
	Skip            int    `yaml:"skip"              env:"BGVOCAB_SKIP"              env-default:"0"`
	OnError         string `yaml:"on_error"          env:"BGVOCAB_ON_ERROR"          env-default:"abort"`
	DropProperNouns bool   `yaml:"drop_proper_nouns" env:"BGVOCAB_DROP_PROPER_NOUNS" env-default:"false"`
	Separator       string `yaml:"separator"         env:"BGVOCAB_SEPARATOR"         env-default:"line"`
}

// BatchConfig holds flashcard batch settings.
type BatchConfig struct {
	Size   int  `yaml:"size"   env:"BGVOCAB_BATCH_SIZE"   env-default:"20"`
	Number int  `yaml:"number" env:"BGVOCAB_BATCH_NUMBER" env-default:"0"`
	Repeat int  `yaml:"repeat" env:"BGVOCAB_REPEAT"       env-default:"1"`
	Quiz   bool `yaml:"quiz"   env:"BGVOCAB_QUIZ"         env-default:"false"`
}

// PDFConfig holds PDF export settings.
type PDFConfig struct {
	FontDir   string `yaml:"font_dir"   env:"BGVOCAB_FONTS"`
	Font      string `yaml:"font"       env:"BGVOCAB_PDF_FONT"       env-default:"LiberationMono"`
	ChunkSize int    `yaml:"chunk_size" env:"BGVOCAB_PDF_CHUNK_SIZE" env-default:"50"`
	OutputDir string `yaml:"output_dir" env:"BGVOCAB_PDF_OUTPUT_DIR" env-default:"."`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"BGVOCAB_ADDR"                     env-default:"127.0.0.1:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"BGVOCAB_SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"BGVOCAB_SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"BGVOCAB_SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"BGVOCAB_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"BGVOCAB_LOG_FORMAT" env-default:"text"`
}
