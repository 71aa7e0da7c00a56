package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yggai/ygggo_building"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(o *Options) *cobra.Command {
	var (
		b                  ygggo_building.Building
		parent, lock, data string
		pos, rot, quat     []float64
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Insert one building row",
		Example: "  ygggo-building save --entity-id 5 --hp 250 --map Town --pos 1,2,3 --rot 0,90,0\n" +
			"  ygggo-building save --entity-id 5 --map Town --quat 0,0.7071,0,0.7071",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if b.Position, err = vec3("pos", pos); err != nil {
				return err
			}
			switch {
			case len(quat) > 0:
				if len(quat) != 4 {
					return fmt.Errorf("--quat needs x,y,z,w, got %d values", len(quat))
				}
				b.Rotation = ygggo_building.Quaternion{X: quat[0], Y: quat[1], Z: quat[2], W: quat[3]}.EulerAngles()
			default:
				if b.Rotation, err = vec3("rot", rot); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("parent") {
				b.ParentID = &parent
			}
			if cmd.Flags().Changed("lock") {
				b.LockPassword = &lock
			}
			if cmd.Flags().Changed("extra") {
				b.ExtraData = &data
			}

			rows, err := ygggo_building.SaveRecord(cmd.Context(), &b, o.Config, o.storeOptions()...)
			if err != nil {
				return err
			}
			if rows != 1 {
				return fmt.Errorf("building %s was not saved", b.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved building %s\n", b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&b.ID, "id", "", "building id (random when empty)")
	cmd.Flags().IntVar(&b.EntityID, "entity-id", 0, "building entity type")
	cmd.Flags().IntVar(&b.CurrentHP, "hp", ygggo_building.DefaultHitPoints, "current hit points")
	cmd.Flags().StringVar(&b.MapName, "map", "", "map name")
	cmd.Flags().Float64SliceVar(&pos, "pos", []float64{0, 0, 0}, "position x,y,z")
	cmd.Flags().Float64SliceVar(&rot, "rot", []float64{0, 0, 0}, "rotation x,y,z in degrees")
	cmd.Flags().Float64SliceVar(&quat, "quat", nil, "rotation quaternion x,y,z,w (overrides --rot)")
	cmd.Flags().StringVar(&parent, "parent", "", "parent building id")
	cmd.Flags().StringVar(&lock, "lock", "", "lock password")
	cmd.Flags().StringVar(&data, "extra", "", "extra data")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func vec3(flag string, v []float64) (ygggo_building.Vec3, error) {
	if len(v) != 3 {
		return ygggo_building.Vec3{}, fmt.Errorf("--%s needs x,y,z, got %d values", flag, len(v))
	}
	return ygggo_building.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
