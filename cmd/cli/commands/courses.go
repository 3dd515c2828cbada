package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/courses/internal/db/models"
	"github.com/celestiaorg/courses/pkg/api/v1/handlers"
)

func newCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newListCoursesCmd(),
		newGetCourseCmd(),
		newCreateCourseCmd(),
		newUpdateCourseCmd(),
		newReplaceCourseCmd(),
		newDeleteCourseCmd(),
	)
	return cmd
}

// listOptionsFromFlags builds list options from the shared filter flags
func listOptionsFromFlags(cmd *cobra.Command) (*models.ListOptions, error) {
	opts := &models.ListOptions{}

	if cmd.Flags().Changed(flagID) {
		id, _ := cmd.Flags().GetUint(flagID)
		if id == 0 {
			return nil, fmt.Errorf("--%s must be positive", flagID)
		}
		opts.ID = &id
	}
	if cmd.Flags().Changed(flagName) {
		name, _ := cmd.Flags().GetString(flagName)
		opts.Name = &name
	}
	opts.Limit, _ = cmd.Flags().GetInt(flagLimit)
	opts.Offset, _ = cmd.Flags().GetInt(flagOffset)
	return opts, nil
}

func addListFlags(cmd *cobra.Command, resource string) {
	cmd.Flags().UintP(flagID, "i", 0, fmt.Sprintf("only the %s with this id", resource))
	cmd.Flags().StringP(flagName, "n", "", fmt.Sprintf("only %ss with exactly this name", resource))
	cmd.Flags().Int(flagLimit, 0, "maximum number of results, 0 for all")
	cmd.Flags().Int(flagOffset, 0, "number of results to skip")
}

func newListCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Long:  `List all courses ordered by id, optionally filtered by id or name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := listOptionsFromFlags(cmd)
			if err != nil {
				return err
			}

			courses, err := apiClient.GetCourses(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("error fetching courses: %w", err)
			}
			return printJSON(cmd, courses)
		},
	}
	addListFlags(cmd, "course")
	return cmd
}

func newGetCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			course, err := apiClient.GetCourse(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error fetching course: %w", err)
			}
			return printJSON(cmd, course)
		},
	}
	cmd.Flags().UintP(flagID, "i", 0, "ID of the course")
	_ = cmd.MarkFlagRequired(flagID)
	return cmd
}

func newCreateCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		Long:  "Create a course with the given name, optionally enrolling existing students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString(flagName)
			students, _ := cmd.Flags().GetUintSlice(flagStudents)

			course, err := apiClient.CreateCourse(cmd.Context(), handlers.CourseCreateParams{
				Name:     name,
				Students: students,
			})
			if err != nil {
				return fmt.Errorf("error creating course: %w", err)
			}
			return printJSON(cmd, course)
		},
	}
	cmd.Flags().StringP(flagName, "n", "", "name of the course")
	cmd.Flags().UintSlice(flagStudents, nil, "comma separated ids of the students to enroll")
	_ = cmd.MarkFlagRequired(flagName)
	return cmd
}

func newUpdateCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Partially update a course",
		Long:  "Change the name and/or the enrolled students of a course. Flags left out are not modified.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			var params handlers.CourseUpdateParams
			if cmd.Flags().Changed(flagName) {
				name, _ := cmd.Flags().GetString(flagName)
				params.Name = &name
			}
			if cmd.Flags().Changed(flagStudents) {
				students, _ := cmd.Flags().GetUintSlice(flagStudents)
				params.Students = append([]uint{}, students...)
			}
			if clearAll, _ := cmd.Flags().GetBool(flagClearStudents); clearAll {
				params.Students = []uint{}
			}

			course, err := apiClient.UpdateCourse(cmd.Context(), id, params)
			if err != nil {
				return fmt.Errorf("error updating course: %w", err)
			}
			return printJSON(cmd, course)
		},
	}
	cmd.Flags().UintP(flagID, "i", 0, "ID of the course")
	cmd.Flags().StringP(flagName, "n", "", "new name of the course")
	cmd.Flags().UintSlice(flagStudents, nil, "comma separated ids replacing the enrolled students")
	cmd.Flags().Bool(flagClearStudents, false, "withdraw every student from the course")
	cmd.MarkFlagsMutuallyExclusive(flagStudents, flagClearStudents)
	_ = cmd.MarkFlagRequired(flagID)
	return cmd
}

func newReplaceCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace a course",
		Long:  "Overwrite every field of a course. Students not listed are withdrawn.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)
			name, _ := cmd.Flags().GetString(flagName)
			students, _ := cmd.Flags().GetUintSlice(flagStudents)

			course, err := apiClient.ReplaceCourse(cmd.Context(), id, handlers.CourseReplaceParams{
				Name:     name,
				Students: students,
			})
			if err != nil {
				return fmt.Errorf("error replacing course: %w", err)
			}
			return printJSON(cmd, course)
		},
	}
	cmd.Flags().UintP(flagID, "i", 0, "ID of the course")
	cmd.Flags().StringP(flagName, "n", "", "name of the course")
	cmd.Flags().UintSlice(flagStudents, nil, "comma separated ids of the enrolled students")
	_ = cmd.MarkFlagRequired(flagID)
	_ = cmd.MarkFlagRequired(flagName)
	return cmd
}

func newDeleteCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			if err := apiClient.DeleteCourse(cmd.Context(), id); err != nil {
				return fmt.Errorf("error deleting course: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Course %d deleted successfully\n", id)
			return err
		},
	}
	cmd.Flags().UintP(flagID, "i", 0, "ID of the course")
	_ = cmd.MarkFlagRequired(flagID)
	return cmd
}
