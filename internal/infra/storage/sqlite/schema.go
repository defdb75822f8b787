package sqlite

import (
	"context"
	"fmt"
)

// Same tables and columns as the Postgres deployment; ids are assigned by
// AUTOINCREMENT and dates stored as ISO text, which compares correctly.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS visitante (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		genero TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		qtd_pessoas INTEGER,
		data TEXT NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS escola (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome_escola TEXT NOT NULL,
		representante TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		num_alunos INTEGER,
		data TEXT NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome_ies TEXT NOT NULL,
		representante TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		num_alunos INTEGER,
		data TEXT NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS pesquisador (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		genero TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		instituicao TEXT NOT NULL,
		pesquisa TEXT NOT NULL,
		data TEXT NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		ativo INTEGER DEFAULT 1
	)`,
}

// Init creates the tables if they do not exist.
func (r *Repository) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: Init - create table: %v", ErrExecQuery, err)
		}
	}
	return nil
}
