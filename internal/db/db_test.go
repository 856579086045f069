package db_test

import (
	"context"
	"database/sql"

	"betawave/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SeedTable", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

				mock.ExpectCommit()
			})

			It("should insert the seed records", func() {
				err := testDB.SeedTable(context.Background(), &[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should skip seeding", func() {
				err := testDB.SeedTable(context.Background(), &[]Test{
					{ID: 1, Username: "Alice"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("records is not a pointer to a slice", func() {
			It("should return an error", func() {
				err := testDB.SeedTable(context.Background(), Test{ID: 1})
				Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				err := testDB.Create(context.Background(), &Test{ID: 1, Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert hits a unique constraint", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*$`).
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Create(context.Background(), &Test{ID: 1, Username: "Alice"})
				Expect(err).To(Equal(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneWhere", func() {
		When("a record matches the condition", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1 AND username = \$2 ORDER BY "tests"\."id" LIMIT \$3.*`).
					WithArgs(1, "Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the record", func() {
				var result Test
				err := testDB.GetOneWhere(context.Background(), &result, "id = ? AND username = ?", 1, "Alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1.*`).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneWhere(context.Background(), &result, "id = ?", 99)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAll", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "Alice").
					AddRow(2, "Bob"))
		})

		It("should return every record", func() {
			var results []Test
			err := testDB.GetAll(context.Background(), &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\)$`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Bob"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", []string{"Alice", "Bob"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		// Postgres rejects "IN $1" for a bare bind parameter, so gorm's IN
		// expansion needs a slice to produce a parenthesized list. Scalar
		// filters must go through GetAllWhere instead.
		When("a single-element slice is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE username IN \(\$1\)$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should expand to a parenthesized list", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", []string{"Alice"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", []string{"Invalid"}, &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE username = \$1$`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "Alice"))
		})

		It("should return the matching records", func() {
			var results []Test
			err := testDB.GetAllWhere(context.Background(), &results, "username = ?", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE username = \$1`).
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()
		})

		It("should report the number of deleted rows", func() {
			rows, err := testDB.DeleteWhere(context.Background(), &Test{}, "username = ?", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(int64(2)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Upsert", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "tests" .*ON CONFLICT \("username"\) DO UPDATE SET.*`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()
		})

		It("should replace the conflicting row", func() {
			err := testDB.Upsert(context.Background(), &Test{Username: "Alice"}, "username")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
