package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
)

func newStudentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Manage students",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := listOptionsFromFlags(cmd)
			if err != nil {
				return err
			}

			students, err := apiClient.GetStudents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("error fetching students: %w", err)
			}
			return printJSON(cmd, students)
		},
	}
	addListFlags(list, "student")

	get := &cobra.Command{
		Use:   "get",
		Short: "Get a student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			student, err := apiClient.GetStudent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error fetching student: %w", err)
			}
			return printJSON(cmd, student)
		},
	}
	get.Flags().UintP(flagID, "i", 0, "ID of the student")
	_ = get.MarkFlagRequired(flagID)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString(flagName)
			birthDate, _ := cmd.Flags().GetString(flagBirthDate)

			student, err := apiClient.CreateStudent(cmd.Context(), handlers.StudentCreateParams{
				Name:      name,
				BirthDate: birthDate,
			})
			if err != nil {
				return fmt.Errorf("error creating student: %w", err)
			}
			return printJSON(cmd, student)
		},
	}
	create.Flags().StringP(flagName, "n", "", "name of the student")
	create.Flags().StringP(flagBirthDate, "b", "", "birth date as YYYY-MM-DD")
	_ = create.MarkFlagRequired(flagName)

	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a student",
		Long:  "Delete a student, withdrawing it from every course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			if err := apiClient.DeleteStudent(cmd.Context(), id); err != nil {
				return fmt.Errorf("error deleting student: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Student %d deleted successfully\n", id)
			return err
		},
	}
	del.Flags().UintP(flagID, "i", 0, "ID of the student")
	_ = del.MarkFlagRequired(flagID)

	cmd.AddCommand(list, get, create, del)
	return cmd
}
