package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		removed, err := sess.store.Delete(id)
		if err = reportFlush(err); err != nil {
			return err
		}
		if !removed {
			fmt.Printf("No entry with id %d.\n", id)
			return nil
		}
		fmt.Printf("Deleted entry %d.\n", id)
		return nil
	},
}

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			return fmt.Errorf("refusing to wipe all entries without --force")
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		n := sess.store.Len()
		if err := reportFlush(sess.store.Clear()); err != nil {
			return err
		}
		fmt.Printf("Cleared %d entries.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "actually wipe all entries")
}
